package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mobidoc/manualqa/core"
)

// manualJSON mirrors the layout of a pre-segmented vehicle manual file.
type manualJSON struct {
	FileName string        `json:"file_name"`
	Sections []sectionJSON `json:"sections"`
}

type sectionJSON struct {
	SectionNumber flexString       `json:"section_number"`
	Title         string           `json:"title"`
	Content       string           `json:"content"`
	Keywords      []string         `json:"keywords"`
	PageRange     []int            `json:"page_range"`
	Subsections   []subsectionJSON `json:"subsections"`
}

type subsectionJSON struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// flexString accepts both string and numeric section numbers; manuals
// segmented by older tooling carry them as bare numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// ParseManual parses a pre-segmented manual JSON blob into a document.
// The document is validated; a manual with no sections, or with a
// section carrying neither title nor content, is rejected.
func ParseManual(data []byte) (*core.Document, error) {
	var manual manualJSON
	if err := json.Unmarshal(data, &manual); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	doc := &core.Document{
		Source:   manual.FileName,
		Sections: make([]core.Section, len(manual.Sections)),
	}
	for i, s := range manual.Sections {
		section := core.Section{
			Number:   string(s.SectionNumber),
			Title:    s.Title,
			Content:  s.Content,
			Keywords: s.Keywords,
		}
		if len(s.PageRange) >= 2 {
			section.Pages = core.PageRange{Start: s.PageRange[0], End: s.PageRange[1]}
		}
		for _, sub := range s.Subsections {
			section.Subsections = append(section.Subsections,
				core.Subsection{Title: sub.Title, Content: sub.Content})
		}
		doc.Sections[i] = section
	}

	if err := core.ValidateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseManualFile reads and parses a manual JSON file from disk.
func ParseManualFile(path string) (*core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manual file: %w", err)
	}
	return ParseManual(data)
}
