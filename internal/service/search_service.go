package service

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"

	"campus-events/internal/dto"
)

const eventsIndex = "events"

// EventSearchService keeps the Meilisearch events index in sync and serves
// the GET /events?q= queries. A nil service degrades to the database
// fallback in EventService.
type EventSearchService interface {
	IndexEvent(view *dto.EventView)
	DeleteEvent(id uint)
	Search(query string) ([]uint, error)
}

type eventSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewEventSearchService(client meilisearch.ServiceManager) EventSearchService {
	s := &eventSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndex()
	return s
}

type meiliEventDoc struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	CollegeName string `json:"college_name"`
	Date        int64  `json:"date"`
}

func (s *eventSearchService) initIndex() {
	sortable := []string{"date"}
	if _, err := s.client.Index(eventsIndex).UpdateSortableAttributes(&sortable); err != nil {
		log.Printf("Failed to update events sortable attributes: %v", err)
	}
}

// IndexEvent upserts the event document. Indexing failures are logged and
// swallowed: search is a convenience layer, never a reason to fail a write.
func (s *eventSearchService) IndexEvent(view *dto.EventView) {
	description := ""
	if view.Description != nil {
		description = s.sanitizer.Sanitize(*view.Description)
	}

	doc := meiliEventDoc{
		ID:          view.ID,
		Name:        view.Name,
		Type:        view.Type,
		Description: description,
		CollegeName: view.CollegeName,
		Date:        view.Date.Unix(),
	}

	if _, err := s.client.Index(eventsIndex).AddDocuments([]meiliEventDoc{doc}, strPtr("id")); err != nil {
		log.Printf("Failed to index event %d: %v", view.ID, err)
	}
}

func (s *eventSearchService) DeleteEvent(id uint) {
	if _, err := s.client.Index(eventsIndex).DeleteDocument(strconv.FormatUint(uint64(id), 10)); err != nil {
		log.Printf("Failed to delete event %d from index: %v", id, err)
	}
}

// Search returns matching event IDs in relevance order.
func (s *eventSearchService) Search(query string) ([]uint, error) {
	resp, err := s.client.Index(eventsIndex).Search(query, &meilisearch.SearchRequest{
		Limit: 100,
	})
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

func strPtr(s string) *string {
	return &s
}
