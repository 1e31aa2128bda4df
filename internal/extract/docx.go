package extract

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/hirestack/resume-intake/constants"
)

// extractDOCX pulls paragraph text in document order, then the text of
// every table cell (row-major, table order), newline-joined. Any parse
// failure degrades to empty text, consistent with the PDF path.
func (e *Extractor) extractDOCX(path string) ExtractionResult {
	res := ExtractionResult{Format: constants.DOCX, Method: constants.MethodNone, Pages: 1}

	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		e.logger.Warn("docx open failed", "path", path, "error", err)
		res.Warnings = append(res.Warnings, err.Error())
		return res
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			e.logger.Warn("docx close failed", "path", path, "error", cerr)
		}
	}()

	paragraphs, cells, err := walkDocumentXML(doc.Editable().GetContent())
	if err != nil {
		e.logger.Warn("docx parse failed", "path", path, "error", err)
		res.Warnings = append(res.Warnings, err.Error())
		return res
	}

	lines := append(paragraphs, cells...)
	text := strings.Join(lines, "\n")
	if isBlank(text) {
		return res
	}
	res.Text = text
	res.Method = constants.MethodPrimary
	return res
}

// walkDocumentXML splits word/document.xml into body paragraphs and table
// cell text. Paragraphs inside tables are reported as cell text only.
func walkDocumentXML(content string) (paragraphs, cells []string, err error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var (
		tblDepth int
		inPara   bool
		inCell   bool
		para     strings.Builder
		cell     strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
			case "tc":
				if tblDepth > 0 {
					inCell = true
					cell.Reset()
				}
			case "p":
				if tblDepth == 0 {
					inPara = true
					para.Reset()
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tblDepth > 0 {
					tblDepth--
				}
			case "tc":
				if inCell {
					inCell = false
					cells = append(cells, cell.String())
				}
			case "p":
				if inPara {
					inPara = false
					paragraphs = append(paragraphs, para.String())
				}
			}
		case xml.CharData:
			if inCell {
				cell.Write(t)
			} else if inPara {
				para.Write(t)
			}
		}
	}
	return paragraphs, cells, nil
}
