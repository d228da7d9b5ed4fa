package utils

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVWriter 按行写出的简单 CSV 写入器，表头在创建时写入
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

func NewCSVWriter(filename string, header []string) (*CSVWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	return &CSVWriter{file: f, writer: w}, nil
}

func (c *CSVWriter) WriteRow(record []string) error {
	return c.writer.Write(record)
}

func (c *CSVWriter) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		c.file.Close()
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return c.file.Close()
}
