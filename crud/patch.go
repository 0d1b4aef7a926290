package crud

import (
	"fmt"
	"strconv"
	"time"

	"folio/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// ValidationError marks a client mistake: missing required field, bad
// coercion, or an upload-constraint violation. Handlers map it to 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// BuildCreateDoc assembles the full document for an insert: every required
// field must be present and non-empty, optional fields are taken when sent,
// and absent fields receive their schema defaults.
func (d Descriptor) BuildCreateDoc(p *Payload, now time.Time) (bson.M, error) {
	doc := bson.M{}
	for _, f := range d.Fields {
		if f.Name == d.ImageField {
			continue
		}
		raw, present := p.Values[f.Name]
		if !present {
			if f.Required {
				return nil, validationf("Missing required field: %s", f.Name)
			}
			if def, ok := defaultValue(f, now); ok {
				doc[f.Name] = def
			}
			continue
		}
		val, err := coerce(f, raw)
		if err != nil {
			return nil, err
		}
		if f.Required {
			if s, ok := val.(string); ok && s == "" {
				return nil, validationf("Missing required field: %s", f.Name)
			}
		}
		doc[f.Name] = val
	}
	doc["createdAt"] = now
	doc["updatedAt"] = now
	return doc, nil
}

// BuildPatch assembles the sparse update: a field enters the patch only if
// its key appears in the payload. Presence, not truthiness, is what counts —
// an explicit false, 0, or "" does overwrite the stored value. The image
// field is handled separately by the caller and is always included.
func (d Descriptor) BuildPatch(p *Payload, now time.Time) (bson.M, error) {
	patch := bson.M{}
	for _, f := range d.Fields {
		if f.Name == d.ImageField {
			continue
		}
		raw, present := p.Values[f.Name]
		if !present {
			continue
		}
		val, err := coerce(f, raw)
		if err != nil {
			return nil, err
		}
		patch[f.Name] = val
	}
	patch["updatedAt"] = now
	return patch, nil
}

func defaultValue(f Field, now time.Time) (any, bool) {
	switch f.Kind {
	case KindBool:
		return false, true
	case KindStringList:
		return []string{}, true
	case KindDate:
		if f.DefaultNow {
			return now, true
		}
	}
	return nil, false
}

func coerce(f Field, raw any) (any, error) {
	switch f.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, validationf("Field %s must be a string", f.Name)
		}
		return s, nil

	case KindBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, validationf("Field %s must be a boolean", f.Name)
			}
			return b, nil
		}
		return nil, validationf("Field %s must be a boolean", f.Name)

	case KindInt:
		n, err := toInt(raw)
		if err != nil {
			return nil, validationf("Field %s must be an integer", f.Name)
		}
		if (f.Min != 0 || f.Max != 0) && (n < f.Min || n > f.Max) {
			return nil, validationf("Field %s must be between %d and %d", f.Name, f.Min, f.Max)
		}
		return n, nil

	case KindDate:
		s, ok := raw.(string)
		if !ok {
			return nil, validationf("Field %s must be a date string", f.Name)
		}
		t, err := parseDate(s)
		if err != nil {
			return nil, validationf("Field %s must be a valid date", f.Name)
		}
		return t, nil

	case KindStringList:
		switch v := raw.(type) {
		case string:
			return utils.SplitTags(v), nil
		case []string:
			return v, nil
		case []any:
			list := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, validationf("Field %s must be a list of strings", f.Name)
				}
				list = append(list, s)
			}
			return list, nil
		}
		return nil, validationf("Field %s must be a list of strings", f.Name)
	}
	return nil, validationf("Field %s has an unknown kind", f.Name)
}

func toInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		n := int(v)
		if float64(n) != v {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		return n, nil
	case string:
		return strconv.Atoi(v)
	}
	return 0, fmt.Errorf("not an integer: %v", raw)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
