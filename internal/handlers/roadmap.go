package handlers

import (
	"html/template"
	"strconv"

	"trenchsniffer.io/web/internal/content"
	"trenchsniffer.io/web/internal/motion"
)

// RoadmapSectionID is the anchor the navigation scrolls to.
const RoadmapSectionID = "roadmap"

// Side of the timeline a milestone sits on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// CompletedIndicator marks a finished milestone.
const CompletedIndicator = "✓"

type RoadmapItem struct {
	ID             string
	Phase          string
	Title          string
	Items          []string
	Status         content.Status
	Indicator      string
	Side           Side
	Reveal         motion.Entrance
	IndicatorStyle template.CSS
	// BulletStyle pulses the list bullets; empty unless the milestone is completed.
	BulletStyle template.CSS
}

type RoadmapData struct {
	SectionID string
	Title     string
	Items     []RoadmapItem
}

// Indicator is "✓" for a completed milestone and the 1-based position otherwise.
func Indicator(index int, status content.Status) string {
	if status == content.StatusCompleted {
		return CompletedIndicator
	}
	return strconv.Itoa(index + 1)
}

// SideFor alternates milestones, starting on the left.
func SideFor(index int) Side {
	if index%2 == 0 {
		return SideLeft
	}
	return SideRight
}

// BuildRoadmap returns one item per milestone, in order.
func BuildRoadmap(r content.Roadmap) RoadmapData {
	items := make([]RoadmapItem, 0, len(r.Milestones))
	for i, m := range r.Milestones {
		side := SideFor(i)
		kind := motion.FromLeft
		if side == SideRight {
			kind = motion.FromRight
		}
		item := RoadmapItem{
			ID:             "milestone-" + strconv.Itoa(i),
			Phase:          m.Phase,
			Title:          m.Title,
			Items:          m.Items,
			Status:         m.Status,
			Indicator:      Indicator(i, m.Status),
			Side:           side,
			Reveal:         motion.Staggered(kind, i),
			IndicatorStyle: css(motion.Style(motion.IndicatorGlow)),
		}
		if m.Status == content.StatusCompleted {
			item.BulletStyle = css(motion.Style(motion.BulletBeat))
		}
		items = append(items, item)
	}
	return RoadmapData{SectionID: RoadmapSectionID, Title: r.Title, Items: items}
}
