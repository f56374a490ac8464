// File: internal/common/fielderrors.go
package common

// FieldErrors maps a field name to the list of messages currently held against
// it. Absence of a key means the field is valid; an empty slice is treated the
// same way.
type FieldErrors map[string][]string

// HasErrors reports whether any field holds at least one message.
func (fe FieldErrors) HasErrors() bool {
	for _, msgs := range fe {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// Clear removes the entry for a single field. Safe on a nil map.
func (fe FieldErrors) Clear(field string) {
	delete(fe, field)
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing their internal map.
func (fe FieldErrors) Clone() FieldErrors {
	if fe == nil {
		return nil
	}
	out := make(FieldErrors, len(fe))
	for field, msgs := range fe {
		copied := make([]string, len(msgs))
		copy(copied, msgs)
		out[field] = copied
	}
	return out
}

// MergeFieldErrors combines the two error channels a form carries: messages
// produced by local synchronous validation, and per-field messages reported by
// the backend. Local messages shadow remote ones for the same field; remote
// messages survive only for fields the local pass said nothing about.
func MergeFieldErrors(local, remote FieldErrors) FieldErrors {
	merged := make(FieldErrors, len(local)+len(remote))
	for field, msgs := range remote {
		if len(msgs) > 0 {
			merged[field] = append([]string(nil), msgs...)
		}
	}
	for field, msgs := range local {
		if len(msgs) > 0 {
			merged[field] = append([]string(nil), msgs...)
		}
	}
	return merged
}
