package graph

import (
	"time"

	"github.com/JinJinHistory/climb-hub/models"
)

// Normalization between storage-native rows and API-native shapes.
// Column values become camelCase keys, timestamps become RFC3339 UTC
// strings, and the calendar-date field keeps its exact YYYY-MM-DD form.
// Resolvers return these maps so the schema layer never sees gorm
// models directly.

func normalizeBrand(b *models.Brand) map[string]interface{} {
	if b == nil || b.ID == "" {
		return nil
	}
	return map[string]interface{}{
		"id":         b.ID,
		"name":       b.Name,
		"logoUrl":    optionalString(b.LogoURL),
		"websiteUrl": optionalString(b.WebsiteURL),
		"createdAt":  formatTimestamp(b.CreatedAt),
		"updatedAt":  formatTimestamp(b.UpdatedAt),
	}
}

func normalizeGym(g *models.Gym) map[string]interface{} {
	if g == nil || g.ID == "" {
		return nil
	}
	return map[string]interface{}{
		"id":              g.ID,
		"brandId":         g.BrandID,
		"name":            g.Name,
		"branchName":      g.BranchName,
		"instagramUrl":    g.InstagramURL,
		"instagramHandle": g.InstagramHandle,
		"address":         optionalString(g.Address),
		"phone":           optionalString(g.Phone),
		"latitude":        optionalFloat(g.Latitude),
		"longitude":       optionalFloat(g.Longitude),
		"isActive":        g.IsActive,
		"createdAt":       formatTimestamp(g.CreatedAt),
		"updatedAt":       formatTimestamp(g.UpdatedAt),
		"brand":           normalizeBrand(&g.Brand),
	}
}

func normalizeRouteUpdate(u *models.RouteUpdate) map[string]interface{} {
	if u == nil || u.ID == "" {
		return nil
	}
	imageURLs := []string(u.ImageURLs)
	if imageURLs == nil {
		imageURLs = []string{}
	}
	var parsedData interface{}
	if u.ParsedData != nil {
		parsedData = map[string]interface{}(u.ParsedData)
	}
	var updateDate interface{}
	if !u.UpdateDate.IsZero() {
		updateDate = u.UpdateDate.String()
	}
	return map[string]interface{}{
		"id":               u.ID,
		"gymId":            u.GymID,
		"type":             u.Type,
		"updateDate":       updateDate,
		"title":            optionalString(u.Title),
		"description":      optionalString(u.Description),
		"instagramPostUrl": optionalString(u.InstagramPostURL),
		"instagramPostId":  optionalString(u.InstagramPostID),
		"imageUrls":        imageURLs,
		"rawCaption":       optionalString(u.RawCaption),
		"parsedData":       parsedData,
		"isVerified":       u.IsVerified,
		"createdAt":        formatTimestamp(u.CreatedAt),
		"updatedAt":        formatTimestamp(u.UpdatedAt),
		"gym":              normalizeGym(&u.Gym),
	}
}

func normalizeCrawlLog(l *models.CrawlLog) map[string]interface{} {
	if l == nil || l.ID == "" {
		return nil
	}
	var completedAt interface{}
	if l.CompletedAt != nil {
		completedAt = formatTimestamp(*l.CompletedAt)
	}
	return map[string]interface{}{
		"id":           l.ID,
		"gymId":        l.GymID,
		"status":       l.Status,
		"postsFound":   l.PostsFound,
		"postsNew":     l.PostsNew,
		"errorMessage": optionalString(l.ErrorMessage),
		"startedAt":    formatTimestamp(l.StartedAt),
		"completedAt":  completedAt,
		"createdAt":    formatTimestamp(l.CreatedAt),
		"gym":          normalizeGym(&l.Gym),
	}
}

// formatTimestamp renders a timestamp as RFC3339 UTC. Zero values
// normalize to null so consumers render "no date" instead of a bogus
// epoch.
func formatTimestamp(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func optionalString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func optionalFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
