package catalog

type DirectorRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}
