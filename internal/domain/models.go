// Package domain defines the core domain models for the marketing assistant.
package domain

// MaxProfiles is the hard cap on profiles per account. Adding beyond the
// cap is a silent no-op, not an error.
const MaxProfiles = 3

// Profile is a named marketing persona the user operates under. Profiles
// are immutable after creation; there is no edit or delete operation.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Niche     string `json:"niche"`
	Objective string `json:"objective"`
}

// PlanEntry is one dated entry of a seven-day content plan.
type PlanEntry struct {
	Day      int    `json:"day"`
	Action   string `json:"action"`
	Caption  string `json:"caption"`
	Hashtags string `json:"hashtags"`
}

// AnalysisSummary holds the headline metrics of a profile analysis.
type AnalysisSummary struct {
	Last12Posts   int    `json:"last12Posts"`
	AvgEngagement string `json:"avgEngagement"`
	PeakHours     string `json:"peakHours"`
	TopContent    string `json:"topContent"`
}

// FollowerAnalysis estimates how much of the audience is real.
type FollowerAnalysis struct {
	RealFollowerEstimation string `json:"realFollowerEstimation"`
	Insights               string `json:"insights"`
}

// ProfileAnalysis is the structured report returned for an Instagram
// profile: summary metrics, a follower estimate, and a seven-day plan.
type ProfileAnalysis struct {
	EngagementRate  string           `json:"engagementRate"`
	BestPostingTime string           `json:"bestPostingTime"`
	TopContentType  string           `json:"topContentType"`
	Summary         AnalysisSummary  `json:"summary"`
	Followers       FollowerAnalysis `json:"followerAnalysis"`
	SevenDayPlan    []PlanEntry      `json:"sevenDayPlan"`
}

// CampaignScript is the three-part script of a viral campaign.
type CampaignScript struct {
	Hook    string `json:"hook"`
	Content string `json:"content"`
	CTA     string `json:"cta"`
}

// ViralCampaign is a complete campaign package for the active profile's
// niche and objective.
type ViralCampaign struct {
	Title         string         `json:"title"`
	Script        CampaignScript `json:"script"`
	Caption       string         `json:"caption"`
	Hashtags      string         `json:"hashtags"`
	TrendingMusic string         `json:"trendingMusic"`
	ThumbnailIdea string         `json:"thumbnailIdea"`
}

// CompetitorAnalysis is the per-handle report of a competitor scan.
type CompetitorAnalysis struct {
	Competitor           string `json:"competitor"`
	Strengths            string `json:"strengths"`
	Weaknesses           string `json:"weaknesses"`
	StrategyToOutperform string `json:"strategyToOutperform"`
}

// ChatMessage is a single turn of the mentor conversation.
type ChatMessage struct {
	Role    string `json:"role"` // user, model
	Content string `json:"content"`
}
