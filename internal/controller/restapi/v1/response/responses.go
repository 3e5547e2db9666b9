package response

type Error struct {
	Error string `json:"error"`
}

type Favorite struct {
	PhotoID  string `json:"photo_id"`
	Favorite bool   `json:"favorite"`
}

type Family struct {
	FamilyID string   `json:"family_id"`
	Name     string   `json:"name"`
	Members  []string `json:"members"`
}
