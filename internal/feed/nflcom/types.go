package nflcom

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
)

// scheduleDoc mirrors the scorestrip XML. The document carries a single week
// of games under the gms element.
type scheduleDoc struct {
	XMLName xml.Name     `xml:"ss"`
	Week    scheduleWeek `xml:"gms"`
}

type scheduleWeek struct {
	Year  string         `xml:"y,attr"`
	Week  string         `xml:"w,attr"`
	Games []scheduleGame `xml:"g"`
}

// scheduleGame is one g element. The time attribute is a bare h:mm clock
// with no meridiem; eventId orders games chronologically within the week.
type scheduleGame struct {
	EventID  string `xml:"eid,attr"`
	GSIS     string `xml:"gsis,attr"`
	Day      string `xml:"d,attr"`
	Time     string `xml:"t,attr"`
	Home     string `xml:"h,attr"`
	Away     string `xml:"v,attr"`
	GameType string `xml:"gt,attr"`
}

// gameDetail mirrors the per-game game-center JSON document. The document is
// keyed by eventId at the top level; this struct is the inner object.
type gameDetail struct {
	Home           teamDetail      `json:"home"`
	Away           teamDetail      `json:"away"`
	Clock          string          `json:"clock"`
	Quarter        quarterMarker   `json:"qtr"`
	RedZone        bool            `json:"redzone"`
	PossessionTeam string          `json:"posteam"`
	Yardline       string          `json:"yl"`
	Down           *int            `json:"down"`
	ToGo           int             `json:"togo"`
	Drives         json.RawMessage `json:"drives"`
}

type teamDetail struct {
	Abbr  string      `json:"abbr"`
	Score scoreDetail `json:"score"`
	Stats statsDetail `json:"stats"`
}

type scoreDetail struct {
	Total *int `json:"T"`
}

type statsDetail struct {
	Team teamStatsDetail `json:"team"`
}

// teamStatsDetail carries one side's aggregate box-score block.
type teamStatsDetail struct {
	FirstDowns       int     `json:"totfd"`
	TotalYards       int     `json:"totyds"`
	PassYards        int     `json:"pyds"`
	RushYards        int     `json:"ryds"`
	Penalties        int     `json:"pen"`
	PenaltyYards     int     `json:"penyds"`
	Turnovers        int     `json:"trnovr"`
	Punts            int     `json:"pt"`
	PuntYards        int     `json:"ptyds"`
	PuntAvg          float64 `json:"ptavg"`
	TimeOfPossession string  `json:"top"`
}

// quarterMarker absorbs the qtr field, which the feed emits either as a
// number (live quarters) or a string ("Pregame", "Halftime", "Final",
// "final overtime").
type quarterMarker string

func (q *quarterMarker) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*q = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = quarterMarker(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("qtr: %w", err)
	}
	*q = quarterMarker(n.String())
	return nil
}

// lastPlayDescription walks the drives tree to the newest play of the
// current drive. Any gap in the tree returns ok=false; the caller degrades
// to a record without a last play.
func lastPlayDescription(drives json.RawMessage) (string, bool) {
	if len(drives) == 0 {
		return "", false
	}

	var tree map[string]json.RawMessage
	if err := json.Unmarshal(drives, &tree); err != nil {
		return "", false
	}

	var current int
	if err := json.Unmarshal(tree["crntdrv"], &current); err != nil {
		return "", false
	}

	var drive struct {
		Plays map[string]struct {
			Description string `json:"desc"`
		} `json:"plays"`
	}
	if err := json.Unmarshal(tree[strconv.Itoa(current)], &drive); err != nil {
		return "", false
	}

	latest := -1
	desc := ""
	for key, play := range drive.Plays {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if id > latest {
			latest = id
			desc = play.Description
		}
	}
	if latest < 0 {
		return "", false
	}
	return desc, true
}
