package report

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// Build joins ledger entries with their requests and clients and shapes them
// into a report. Entries outside the range or the group, and entries whose
// request no longer exists, are left out. It performs no I/O.
func Build(entries []domain.TimeCostEntry, requests []domain.Request, clients []domain.Client, in Input) *domain.Report {
	in = in.withDefaults()

	reqByID := make(map[uuid.UUID]*domain.Request, len(requests))
	for i := range requests {
		reqByID[requests[i].ID] = &requests[i]
	}
	clientByID := make(map[uuid.UUID]*domain.Client, len(clients))
	for i := range clients {
		clientByID[clients[i].ID] = &clients[i]
	}

	var (
		rows []domain.ReportRow
		kept []domain.TimeCostEntry
	)
	for _, e := range entries {
		if !in.Range.Contains(e.Date) {
			continue
		}
		req, ok := reqByID[e.RequestID]
		if !ok {
			continue
		}
		if !in.Group.matches(e, req) {
			continue
		}

		row := domain.ReportRow{
			EntryID:       e.ID,
			RequestID:     req.ID,
			RequestNumber: req.RequestNumber,
			RequestTitle:  req.Title,
			UserID:        e.UserID,
			TeamMember:    e.UserName,
			ClientID:      req.ClientID,
			Client:        domain.NoClientLabel,
			HoursSpent:    e.Hours,
			Date:          e.Date,
			Notes:         e.Notes,
		}
		if req.ClientID != nil {
			if c, ok := clientByID[*req.ClientID]; ok {
				row.Client = c.Company
			}
		}
		rows = append(rows, row)
		kept = append(kept, e)
	}

	report := &domain.Report{
		Range:      in.Range,
		Group:      in.Group.GroupFilter,
		Mode:       in.Mode,
		TotalHours: decimal.Zero,
	}
	for _, r := range rows {
		report.TotalHours = report.TotalHours.Add(r.HoursSpent)
	}

	if in.Mode == domain.ReportModeAggregated {
		report.Aggregated = aggregate(rows, kept)
		return report
	}

	sortRows(rows, in.Sort, in.Direction)
	if rows == nil {
		rows = []domain.ReportRow{}
	}
	report.Rows = rows
	return report
}

func sortRows(rows []domain.ReportRow, field domain.ReportSortField, dir domain.SortDirection) {
	compare := func(a, b domain.ReportRow) int {
		if field == domain.ReportSortRequestNumber {
			return domain.CompareRequestNumbers(a.RequestNumber, b.RequestNumber)
		}
		return a.Date.Compare(b.Date)
	}
	if dir == domain.SortDesc {
		slices.SortStableFunc(rows, func(a, b domain.ReportRow) int { return compare(b, a) })
		return
	}
	slices.SortStableFunc(rows, compare)
}

type pairKey struct {
	request uuid.UUID
	user    uuid.UUID
}

// aggregate sums rows per (request, user). rows[i] was built from entries[i].
// The note kept for a pair is the latest non-empty one by entry date, then
// creation time.
func aggregate(rows []domain.ReportRow, entries []domain.TimeCostEntry) []domain.AggregatedRow {
	index := make(map[pairKey]int)
	out := make([]domain.AggregatedRow, 0)
	latest := make([]*domain.TimeCostEntry, 0)

	for i, r := range rows {
		key := pairKey{request: r.RequestID, user: r.UserID}
		idx, ok := index[key]
		if !ok {
			idx = len(out)
			index[key] = idx
			out = append(out, domain.AggregatedRow{
				RequestID:     r.RequestID,
				RequestNumber: r.RequestNumber,
				RequestTitle:  r.RequestTitle,
				UserID:        r.UserID,
				TeamMember:    r.TeamMember,
				ClientID:      r.ClientID,
				Client:        r.Client,
				HoursSpent:    decimal.Zero,
			})
			latest = append(latest, nil)
		}

		agg := &out[idx]
		agg.HoursSpent = agg.HoursSpent.Add(r.HoursSpent)
		agg.EntryCount++

		e := &entries[i]
		if e.Notes == "" {
			continue
		}
		if prev := latest[idx]; prev == nil || newer(e, prev) {
			latest[idx] = e
			agg.Notes = e.Notes
		}
	}

	slices.SortStableFunc(out, func(a, b domain.AggregatedRow) int {
		if c := b.HoursSpent.Cmp(a.HoursSpent); c != 0 {
			return c
		}
		return domain.CompareRequestNumbers(a.RequestNumber, b.RequestNumber)
	})
	return out
}

func newer(a, b *domain.TimeCostEntry) bool {
	return cmp.Or(a.Date.Compare(b.Date), a.CreatedAt.Compare(b.CreatedAt)) > 0
}
