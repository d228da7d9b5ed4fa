package utils

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// ParquetWriter 泛型 Parquet 写入器，列定义来自 T 的 parquet 标签
type ParquetWriter[T any] struct {
	file   *os.File
	writer *parquet.GenericWriter[T]
}

func NewParquetWriter[T any](filename string, options ...parquet.WriterOption) (*ParquetWriter[T], error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	defaultOpts := []parquet.WriterOption{
		parquet.Compression(&parquet.Snappy),
	}
	finalOpts := append(defaultOpts, options...)

	return &ParquetWriter[T]{
		file:   f,
		writer: parquet.NewGenericWriter[T](f, finalOpts...),
	}, nil
}

func (p *ParquetWriter[T]) Write(data []T) error {
	_, err := p.writer.Write(data)
	return err
}

// Close 先关 Parquet Writer 写入 Footer，再关物理文件
func (p *ParquetWriter[T]) Close() error {
	if err := p.writer.Close(); err != nil {
		p.file.Close()
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	if err := p.file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
