package model

type AuthContext struct {
	Google map[string]any `json:"google"`
}

type AuthQueryInput struct {
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Header map[string]string `json:"header"`
	Auth   AuthContext       `json:"auth"`
}

type AuthQueryOutput struct {
	Allow bool `json:"allow"`
}
