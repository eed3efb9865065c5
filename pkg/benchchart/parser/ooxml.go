package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// EMUPerPixel is the number of drawing units per pixel at 96 DPI.
const EMUPerPixel = 9525

// EMUToPixels converts a drawing offset to pixels, truncating.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// opcPackage reads parts out of an xlsx zip container.
type opcPackage struct {
	fsys fs.FS
}

func newPackage(r *zip.Reader) opcPackage {
	return opcPackage{fsys: r}
}

// decode unmarshals the part name into v. A missing part returns an error
// matching fs.ErrNotExist.
func (p opcPackage) decode(name string, v interface{}) error {
	data, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// relationships returns the relationships declared for part. A part without
// a relationships part has none.
func (p opcPackage) relationships(part string) (relationships, error) {
	var rels relationships
	err := p.decode(relsPathFor(part), &rels)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return relationships{}, err
	}
	return rels, nil
}

type relationships struct {
	Items []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// ofType keeps relationships whose type URI ends in "/"+kind.
func (r relationships) ofType(kind string) []relationship {
	var out []relationship
	suffix := "/" + strings.ToLower(kind)
	for _, rel := range r.Items {
		if strings.HasSuffix(strings.ToLower(rel.Type), suffix) {
			out = append(out, rel)
		}
	}
	return out
}

// byID indexes relationships of the given kind by id.
func (r relationships) byID(kind string) map[string]relationship {
	out := make(map[string]relationship)
	for _, rel := range r.ofType(kind) {
		out[rel.ID] = rel
	}
	return out
}

type workbookPart struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

// resolvePart resolves a relationship target against the part that declares it.
func resolvePart(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(source), target)
}

// relsPathFor returns the relationships part belonging to partPath.
func relsPathFor(partPath string) string {
	dir, file := path.Split(partPath)
	return dir + "_rels/" + file + ".rels"
}
