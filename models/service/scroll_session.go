package service

import (
	"encoding/json"
	"time"

	"github.com/Cece94/articguessr/models/aic"
	"github.com/google/uuid"
)

// ScrollSession is the resumable state of one infinite-scroll browsing
// session: the filters in effect, every artwork accumulated so far, and
// where pagination stands. The UI persists it through the redis cache so
// a reload within the freshness window doesn't refetch every page.
type ScrollSession struct {
	ID         string         `json:"id"`
	Filters    *aic.Filters   `json:"filters"`
	Artworks   []*aic.Artwork `json:"artworks"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	HasMore    bool           `json:"has_more"`
	SavedAt    time.Time      `json:"saved_at"`
}

func NewScrollSession(filters *aic.Filters) *ScrollSession {
	return &ScrollSession{
		ID:       uuid.New().String(),
		Filters:  filters,
		Artworks: make([]*aic.Artwork, 0),
	}
}

func ScrollSessionFromJson(jsonData string) (*ScrollSession, error) {
	sess := &ScrollSession{}
	err := json.Unmarshal([]byte(jsonData), sess)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (sess *ScrollSession) ToJson() (string, error) {
	bytes, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
