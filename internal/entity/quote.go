package entity

type Quote struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Language string `json:"language"`
}

type Category struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

type Language struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

type Template struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Language   string   `json:"language"`
	Dimensions string   `json:"dimensions"`
	Tags       []string `json:"tags"`
	CreatedAt  string   `json:"createdAt"`
}
