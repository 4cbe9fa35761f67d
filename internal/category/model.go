package category

type Category struct {
	Key     uint   `json:"_key"`
	Name    string `json:"categoryName"`
	Picture string `json:"categoryPicture"`
}
