package handlers

import (
	"strconv"

	"trenchsniffer.io/web/internal/content"
	"trenchsniffer.io/web/internal/motion"
)

// FeaturesSectionID is the anchor the navigation scrolls to.
const FeaturesSectionID = "features"

type FeatureCard struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Reveal      motion.Entrance
}

type FeaturesData struct {
	SectionID string
	Title     string
	Cards     []FeatureCard
}

// BuildFeatures returns one card per configured feature, in order, each fading
// up one stagger step after the previous.
func BuildFeatures(f content.Features) FeaturesData {
	cards := make([]FeatureCard, 0, len(f.Items))
	for i, it := range f.Items {
		cards = append(cards, FeatureCard{
			ID:          "feature-" + strconv.Itoa(i),
			Title:       it.Title,
			Description: it.Description,
			Icon:        it.Icon,
			Reveal:      motion.Staggered(motion.FadeUp, i),
		})
	}
	return FeaturesData{SectionID: FeaturesSectionID, Title: f.Title, Cards: cards}
}
