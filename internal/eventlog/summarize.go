package eventlog

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/faceair/drain"

	"github.com/ivoronin/dockview/internal/types"
)

// Summarize groups events by type and reason, then clusters the messages of
// each group. Warnings sort first, then larger clusters, then by reason.
func Summarize(events []types.Event, ignore *regexp.Regexp, threshold float64) types.EventSummary {
	if len(events) == 0 {
		return types.EventSummary{}
	}

	type typeReasonKey struct{ Type, Reason string }

	groups := make(map[typeReasonKey][]types.Event)
	ignoredCount := 0

	for _, event := range events {
		if ignore != nil && ignore.MatchString(event.Reason+": "+event.Message) {
			ignoredCount++

			continue
		}

		key := typeReasonKey{Type: event.Type, Reason: event.Reason}
		groups[key] = append(groups[key], event)
	}

	if len(groups) == 0 {
		return types.EventSummary{IgnoredCount: ignoredCount}
	}

	var result []types.EventCluster

	for key, group := range groups {
		result = append(result, clusterWithDrain(group, threshold, key.Type, key.Reason)...)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Type != result[j].Type {
			return result[i].Type == types.EventWarning
		}

		if result[i].ExemplarCount != result[j].ExemplarCount {
			return result[i].ExemplarCount > result[j].ExemplarCount
		}

		if result[i].Reason != result[j].Reason {
			return result[i].Reason < result[j].Reason
		}

		return result[i].Message < result[j].Message
	})

	return types.EventSummary{
		Clusters:     result,
		IgnoredCount: ignoredCount,
	}
}

// clusterWithDrain clusters similar messages of one type and reason.
func clusterWithDrain(events []types.Event, threshold float64, eventType, reason string) []types.EventCluster {
	config := drain.DefaultConfig()
	config.SimTh = threshold
	d := drain.New(config)

	// Train everything first: templates keep evolving while Drain learns,
	// so clusters are read only after the last message.
	trained := make([]*drain.LogCluster, len(events))
	for i, evt := range events {
		trained[i] = d.Train(sanitizeMessage(evt.Message))
	}

	lastSeen := make(map[*drain.LogCluster]time.Time)
	counts := make(map[*drain.LogCluster]int)
	var order []*drain.LogCluster

	for i, cluster := range trained {
		if _, seen := counts[cluster]; !seen {
			order = append(order, cluster)
		}
		counts[cluster]++
		if t := events[i].Time; t.After(lastSeen[cluster]) {
			lastSeen[cluster] = t
		}
	}

	result := make([]types.EventCluster, 0, len(order))
	for _, cluster := range order {
		result = append(result, types.EventCluster{
			Type:          eventType,
			Reason:        reason,
			Message:       extractTemplate(cluster.String()),
			ExemplarCount: counts[cluster],
			LastSeen:      lastSeen[cluster],
		})
	}

	return result
}

// extractTemplate extracts template from Drain's String() format.
// Input:  "id={1} : size={3} : template content here"
// Output: "template content here"
func extractTemplate(s string) string {
	const sep = " : "

	idx := strings.LastIndex(s, sep)
	if idx == -1 {
		return s
	}

	return s[idx+len(sep):]
}

// sanitizeMessage normalizes whitespace.
func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")

	return msg
}
