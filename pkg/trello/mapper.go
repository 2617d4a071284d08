package trello

import "fmt"

// Mapping from decoded JSON to entities. Every field named here is required;
// a response missing one is rejected rather than partially applied.

// asObject asserts that v is a JSON object.
func asObject(v interface{}) (map[string]interface{}, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrUnexpectedJSON, v)
	}
	return obj, nil
}

// asArray asserts that v is a JSON array.
func asArray(v interface{}) ([]interface{}, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %T", ErrUnexpectedJSON, v)
	}
	return items, nil
}

// fieldReader reads typed fields from a JSON object and keeps the first
// error, so a mapping function can read all its fields and check once.
type fieldReader struct {
	obj map[string]interface{}
	err error
}

func (r *fieldReader) lookup(key string) (interface{}, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.obj[key]
	if !ok {
		r.err = fmt.Errorf("%w: %q", ErrMissingField, key)
		return nil, false
	}
	return v, true
}

func (r *fieldReader) typeError(key, want string, got interface{}) {
	r.err = fmt.Errorf("%w: %q is %T, want %s", ErrFieldType, key, got, want)
}

func (r *fieldReader) str(key string) string {
	v, ok := r.lookup(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.typeError(key, "string", v)
	}
	return s
}

func (r *fieldReader) boolean(key string) bool {
	v, ok := r.lookup(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.typeError(key, "bool", v)
	}
	return b
}

func (r *fieldReader) integer(key string) int {
	v, ok := r.lookup(key)
	if !ok {
		return 0
	}
	f, ok := v.(float64)
	if !ok || f != float64(int(f)) {
		r.typeError(key, "integer", v)
		return 0
	}
	return int(f)
}

func (r *fieldReader) strings(key string) []string {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		r.typeError(key, "array", v)
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			r.typeError(key, "array of strings", item)
			return nil
		}
		out = append(out, s)
	}
	return out
}

func (r *fieldReader) object(key string) map[string]interface{} {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		r.typeError(key, "object", v)
	}
	return obj
}

func (r *fieldReader) objects(key string) []map[string]interface{} {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		r.typeError(key, "array", v)
		return nil
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			r.typeError(key, "array of objects", item)
			return nil
		}
		out = append(out, obj)
	}
	return out
}

// boardFromJSON maps a board object: id, name, desc, closed, url.
func boardFromJSON(c *Client, v interface{}) (*Board, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}
	r := &fieldReader{obj: obj}
	b := &Board{
		client:      c,
		ID:          r.str("id"),
		Name:        r.str("name"),
		Description: r.str("desc"),
		Closed:      r.boolean("closed"),
		URL:         r.str("url"),
	}
	if r.err != nil {
		return nil, fmt.Errorf("board: %w", r.err)
	}
	return b, nil
}

// listFromJSON maps a list object: id, name, closed. boardID is the parent
// board the listing was made from.
func listFromJSON(c *Client, boardID string, v interface{}) (*List, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}
	r := &fieldReader{obj: obj}
	l := &List{
		client:  c,
		ID:      r.str("id"),
		Name:    r.str("name"),
		Closed:  r.boolean("closed"),
		BoardID: boardID,
	}
	if r.err != nil {
		return nil, fmt.Errorf("list: %w", r.err)
	}
	return l, nil
}

// cardSummaryFromJSON maps the partial card returned by list listings and
// card creation: id, name, desc, closed, url. Detail fields stay unset.
func cardSummaryFromJSON(c *Client, listID string, v interface{}) (*Card, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}
	r := &fieldReader{obj: obj}
	card := &Card{
		client:      c,
		ID:          r.str("id"),
		Name:        r.str("name"),
		Description: r.str("desc"),
		Closed:      r.boolean("closed"),
		URL:         r.str("url"),
		ListID:      listID,
	}
	if r.err != nil {
		return nil, fmt.Errorf("card: %w", r.err)
	}
	return card, nil
}

// cardDetailFromJSON maps a full card object as returned by GET /cards/{id}.
// The id is taken from the handle, not the response.
func cardDetailFromJSON(c *Client, id string, v interface{}) (*Card, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}
	r := &fieldReader{obj: obj}
	card := &Card{
		client:      c,
		ID:          id,
		Name:        r.str("name"),
		Description: r.str("desc"),
		Closed:      r.boolean("closed"),
		URL:         r.str("url"),
		MemberIDs:   r.strings("idMembers"),
		ShortID:     r.integer("idShort"),
		ListID:      r.str("idList"),
		BoardID:     r.str("idBoard"),
		Attachments: r.objects("attachments"),
		Labels:      r.objects("labels"),
		Badges:      r.object("badges"),
		hydrated:    true,
	}
	if r.err != nil {
		return nil, fmt.Errorf("card %s: %w", id, r.err)
	}
	return card, nil
}

// boardDetailFromJSON maps GET /boards/{id}: name, desc, closed, url.
func boardDetailFromJSON(c *Client, id string, v interface{}) (*Board, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}
	r := &fieldReader{obj: obj}
	b := &Board{
		client:      c,
		ID:          id,
		Name:        r.str("name"),
		Description: r.str("desc"),
		Closed:      r.boolean("closed"),
		URL:         r.str("url"),
	}
	if r.err != nil {
		return nil, fmt.Errorf("board %s: %w", id, r.err)
	}
	return b, nil
}

// listDetailFromJSON maps GET /lists/{id}: name, closed.
func listDetailFromJSON(c *Client, id, boardID string, v interface{}) (*List, error) {
	obj, err := asObject(v)
	if err != nil {
		return nil, err
	}
	r := &fieldReader{obj: obj}
	l := &List{
		client:  c,
		ID:      id,
		Name:    r.str("name"),
		Closed:  r.boolean("closed"),
		BoardID: boardID,
	}
	if r.err != nil {
		return nil, fmt.Errorf("list %s: %w", id, r.err)
	}
	return l, nil
}
