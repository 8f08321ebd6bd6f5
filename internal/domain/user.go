package domain

type User struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name,omitempty"`
	Interests []string `json:"interests"`
}
