package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileMeta describes a candidate upload. The client never reads file contents;
// size and name are enough for every rule the forms enforce.
type FileMeta struct {
	Name      string
	SizeBytes int64
}

// ValidateFile checks a single file against the rule. A nil file on a
// required field yields one message; a nil file on an optional field passes.
func ValidateFile(file *FileMeta, rule FieldRule) []string {
	if file == nil {
		if rule.Required {
			return []string{fmt.Sprintf("%s is required", rule.label())}
		}
		return nil
	}

	var errs []string

	if rule.MaxSizeKB > 0 && file.SizeBytes > rule.MaxSizeKB*1024 {
		errs = append(errs, fmt.Sprintf("File size must be less than %s", formatSizeMB(rule.MaxSizeKB)))
	}
	if len(rule.AllowedExts) > 0 && !extAllowed(file.Name, rule.AllowedExts) {
		errs = append(errs, fmt.Sprintf("File type must be one of: %s", strings.Join(rule.AllowedExts, ", ")))
	}

	return errs
}

// ValidateFiles checks a multi-file field: required-ness, the file-count
// ceiling, then each file independently with its messages prefixed by a
// 1-based index.
func ValidateFiles(files []FileMeta, rule FieldRule) []string {
	if len(files) == 0 {
		if rule.Required {
			return []string{fmt.Sprintf("%s is required", rule.label())}
		}
		return nil
	}

	var errs []string

	if rule.MaxFiles > 0 && len(files) > rule.MaxFiles {
		errs = append(errs, fmt.Sprintf("Maximum %d files allowed", rule.MaxFiles))
	}

	for i := range files {
		for _, msg := range ValidateFile(&files[i], rule) {
			errs = append(errs, fmt.Sprintf("File %d: %s", i+1, msg))
		}
	}

	return errs
}

func extAllowed(name string, allowed []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, a := range allowed {
		if ext == strings.ToLower(strings.TrimPrefix(a, ".")) {
			return true
		}
	}
	return false
}

// formatSizeMB renders a KB ceiling in MB, dropping a trailing ".0".
func formatSizeMB(kb int64) string {
	mb := float64(kb) / 1024
	s := fmt.Sprintf("%.1f", mb)
	s = strings.TrimSuffix(s, ".0")
	return s + "MB"
}
