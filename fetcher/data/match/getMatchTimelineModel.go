package matchfetcher

// Default match timeline.
type MatchTimeline struct {
	Info MatchTimelineData `json:"info"`
}

// Data of the timeline.
type MatchTimelineData struct {
	FrameInterval int64                       `json:"frameInterval"`
	Frames        []MatchTimelineFrame        `json:"frames"`
	Participants  []MatchTimelineParticipants `json:"participants"`
}

// Frame generated every FrameInterval interval.
type MatchTimelineFrame struct {
	Events            []EventFrame                 `json:"events"`
	ParticipantFrames map[string]ParticipantFrames `json:"participantFrames"`
}

// Frame with the events.
type EventFrame struct {
	AssistingParticipantIds []int  `json:"assistingParticipantIds,omitempty"`
	KillerId                *int   `json:"killerId,omitempty"`
	Timestamp               int64  `json:"timestamp"`
	Type                    string `json:"type"`
	VictimId                *int   `json:"victimId,omitempty"`
}

// Frame for each participant.
type ParticipantFrames struct {
	CurrentGold         int `json:"currentGold"`
	JungleMinionsKilled int `json:"jungleMinionsKilled"`
	Level               int `json:"level"`
	MinionsKilled       int `json:"minionsKilled"`
	ParticipantId       int `json:"participantId"`
	TotalGold           int `json:"totalGold"`
}

// Each participant with it's respective ID inside the timeline.
type MatchTimelineParticipants struct {
	ParticipantId int    `json:"participantId"`
	Puuid         string `json:"puuid"`
}
