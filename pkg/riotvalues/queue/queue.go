package queuevalues

// Queue type strings returned by the league endpoints.
const (
	RankedSolo = "RANKED_SOLO_5x5"
	RankedFlex = "RANKED_FLEX_SR"
)

var RankedQueueValue = map[int]string{
	420: RankedSolo,
	440: RankedFlex,
}
