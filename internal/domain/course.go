package domain

import "github.com/goccy/go-json"

// Course is a catalog entry from the course platform. The upstream JSON
// object is kept so recommendations can be returned exactly as upstream
// sent them.
type Course struct {
	ID   int64
	Name string

	raw []byte
}

func (c *Course) UnmarshalJSON(b []byte) error {
	var fields struct {
		ID   int64   `json:"id"`
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	c.ID = fields.ID
	c.Name = ""
	if fields.Name != nil {
		c.Name = *fields.Name
	}
	c.raw = append([]byte(nil), b...)
	return nil
}

func (c Course) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	return json.Marshal(struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}{c.ID, c.Name})
}

// CourseIDSet collects the ids of every course in the given lists.
func CourseIDSet(lists ...[]Course) map[int64]struct{} {
	ids := make(map[int64]struct{})
	for _, list := range lists {
		for _, c := range list {
			ids[c.ID] = struct{}{}
		}
	}
	return ids
}
