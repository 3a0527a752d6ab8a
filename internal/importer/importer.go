// Package importer は単語一覧ファイル (.xlsx / .csv) を読み込む
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// 列の並び: A 単語, B 意味, C 発音, D 例文, E 画像URL, F 音声URL
const (
	colTerm = iota
	colMeaning
	colPronunciation
	colExample
	colImageURL
	colAudioURL
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Row は1行分の単語
type Row struct {
	Line          int // 1始まりの行番号
	Term          string
	Meaning       string
	Pronunciation string
	Example       string
	ImageURL      string
	AudioURL      string
}

// RowError は読み飛ばした行の理由
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) String() string {
	return fmt.Sprintf("%d行目: %s", e.Line, e.Reason)
}

// Parse は拡張子で形式を判定して行を返す。単語か意味が空の行は RowError として返す
func Parse(filename string, r io.Reader) ([]Row, []RowError, error) {
	var records [][]string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		records, err = readExcel(r)
	case ".csv":
		records, err = readCSV(r)
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, rowErrs := toRows(records)
	return rows, rowErrs, nil
}

func readExcel(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return records, nil
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	h := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(record[0], "\ufeff")))
	return h == "term" || h == "word" || h == "単語"
}

func cell(record []string, i int) string {
	if i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}

func toRows(records [][]string) ([]Row, []RowError) {
	var rows []Row
	var rowErrs []RowError
	for i, rec := range records {
		line := i + 1
		if i == 0 && isHeader(rec) {
			continue
		}
		// 完全な空行は黙って飛ばす
		if strings.Join(rec, "") == "" {
			continue
		}
		row := Row{
			Line:          line,
			Term:          cell(rec, colTerm),
			Meaning:       cell(rec, colMeaning),
			Pronunciation: cell(rec, colPronunciation),
			Example:       cell(rec, colExample),
			ImageURL:      cell(rec, colImageURL),
			AudioURL:      cell(rec, colAudioURL),
		}
		if row.Term == "" || row.Meaning == "" {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: "単語と意味は必須です"})
			continue
		}
		rows = append(rows, row)
	}
	return rows, rowErrs
}
