package models

// Post is a feed entry. ID is assigned by the store on creation; Image is nil
// when no file was uploaded and encodes as JSON null.
type Post struct {
	ID       int64     `json:"id"`
	Text     string    `json:"texto"`
	Image    []byte    `json:"imagen"`
	Comments []Comment `json:"comentarios"`
}

// Comment belongs to exactly one Post and is only reachable through it.
type Comment struct {
	Author string `json:"autor"`
	Text   string `json:"texto"`
}

// Clone returns a copy of p that shares no slices with it.
func (p Post) Clone() Post {
	c := p
	if p.Image != nil {
		c.Image = append([]byte(nil), p.Image...)
	}
	c.Comments = append(make([]Comment, 0, len(p.Comments)), p.Comments...)
	return c
}
