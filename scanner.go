package tenox

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// ClassReference is one class name found in a class attribute.
type ClassReference struct {
	ClassName string       // "sm:p-10px"
	Attribute string       // Full attribute value: "card sm:p-10px"
	Location  FileLocation // Where it was found
}

// FileLocation tracks where a class reference was found.
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the class name
	Text   string // Full line content for source display
}

// classAttrPattern finds class attributes in either quote style. The name
// must follow whitespace so data-class and similar attributes are skipped.
var classAttrPattern = regexp.MustCompile(`(?:^|\s)class\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// scanFile collects every class name referenced in a class attribute of the
// file. Attributes spanning several lines are not followed.
func scanFile(filePath string) ([]ClassReference, error) {
	// #nosec G304 - path comes from trusted configuration
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}

// extractClassesFromLine returns one reference per class name on the line.
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	var refs []ClassReference

	for _, m := range classAttrPattern.FindAllStringSubmatchIndex(line, -1) {
		start, end := m[2], m[3]
		if start < 0 {
			start, end = m[4], m[5]
		}
		attr := line[start:end]

		offset := 0
		for _, name := range strings.Fields(attr) {
			idx := strings.Index(attr[offset:], name)
			col := start + offset + idx + 1
			offset += idx + len(name)

			refs = append(refs, ClassReference{
				ClassName: name,
				Attribute: attr,
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: col,
					Text:   line,
				},
			})
		}
	}
	return refs
}
