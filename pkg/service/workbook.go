package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/textproto"
	"strings"
)

const (
	workbookContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	workbookFormFieldName = "file"
	defaultWorkbookName   = "input.xlsx"
	workbookPartName      = "xl/workbook.xml"
	maxWorkbookPartBytes  = 4 << 20
)

// Sheet names that identify the original small-model workbook. A workbook
// with the small-model basic sheet and without the standard one is refused.
const (
	SmallModelBasicSheet = "様式SA_基本情報"
	ModelBasicSheet      = "様式A_基本情報"
)

type workbookDoc struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
	} `xml:"sheets>sheet"`
}

// WorkbookSheets lists the sheet names of an .xlsx workbook.
func WorkbookSheets(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("service: open workbook: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != workbookPartName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("service: open %s: %w", workbookPartName, err)
		}
		defer rc.Close()
		var doc workbookDoc
		if err := xml.NewDecoder(io.LimitReader(rc, maxWorkbookPartBytes)).Decode(&doc); err != nil {
			return nil, fmt.Errorf("service: parse %s: %w", workbookPartName, err)
		}
		names := make([]string, 0, len(doc.Sheets))
		for _, s := range doc.Sheets {
			names = append(names, s.Name)
		}
		return names, nil
	}
	return nil, fmt.Errorf("service: workbook has no %s", workbookPartName)
}

// IsSmallModelWorkbook reports whether data is an original small-model
// workbook. Unreadable data is not classified as one.
func IsSmallModelWorkbook(data []byte) bool {
	sheets, err := WorkbookSheets(data)
	if err != nil {
		return false
	}
	hasSmall, hasModel := false, false
	for _, name := range sheets {
		switch strings.TrimSpace(name) {
		case SmallModelBasicSheet:
			hasSmall = true
		case ModelBasicSheet:
			hasModel = true
		}
	}
	return hasSmall && !hasModel
}

func fileHeader(filename string) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, workbookFormFieldName, filename))
	h.Set("Content-Type", workbookContentType)
	return h
}
