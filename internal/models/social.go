package models

// SocialLink is one entry in the footer social-links collection.
// All three fields are required by the schema; the collection is
// replaced wholesale on every update.
type SocialLink struct {
	Href string `bson:"href" json:"href"`
	Icon string `bson:"icon" json:"icon"`
	Alt  string `bson:"alt" json:"alt"`
}
