package recommendation

type RecommendRequest struct {
	Goal string `json:"goal"`
}

type Skill struct {
	Skill      string `json:"skill"`
	Importance string `json:"importance"`
	Level      string `json:"level"`
}

type RoadmapStep struct {
	Week      string   `json:"week"`
	Topics    []string `json:"topics"`
	Resources []string `json:"resources"`
	Hours     int      `json:"hours"`
}

type Recommendation struct {
	Goal              string        `json:"goal"`
	RecommendedSkills []Skill       `json:"recommendedSkills"`
	Roadmap           []RoadmapStep `json:"roadmap"`
	Advice            string        `json:"advice"`
}
