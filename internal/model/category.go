package model

type Category struct {
	CategoryID int64  `db:"category_id" json:"category_id"`
	ParentID   *int64 `db:"parent_id" json:"parent_id"`
	Name       string `db:"name" json:"name"`
}
