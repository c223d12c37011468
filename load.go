package siteconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadSource overlays a YAML authoring document onto base. Keys absent from
// the document keep their base value; a socials list replaces the base list.
func LoadSource(r io.Reader, base Source) (Source, error) {
	src := base
	src.Locale.LangTag = append([]string(nil), base.Locale.LangTag...)
	src.Socials = append([]SocialTemplate(nil), base.Socials...)

	data, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("siteconfig: read source: %w", err)
	}
	if err := decodeYAML(data, &src); err != nil {
		if errors.Is(err, io.EOF) {
			return src, nil
		}
		return Source{}, fmt.Errorf("siteconfig: parse source: %w", err)
	}
	return src, nil
}

// LoadFile builds a Table from the YAML file at path layered over Default.
// An empty path builds Default unchanged.
func LoadFile(path string) (*Table, error) {
	if path == "" {
		return Build(Default())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("siteconfig: open %s: %w", path, err)
	}
	defer f.Close()

	src, err := LoadSource(f, Default())
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return Build(src)
}
