package order

import "sort"

type (
	// Dashboard is the full view rebuilt from the store after every mutation.
	Dashboard struct {
		Rows   []Order `json:"rows"`
		Chart  []Bar   `json:"chart"`
		Alerts Alerts  `json:"alerts"`
	}

	// Bar is one bar of the priority chart: height tracks the score,
	// intensity tracks urgency. Purely presentational.
	Bar struct {
		Name      string  `json:"name"`
		Height    float64 `json:"height"`
		Intensity int     `json:"intensity"`
	}

	Alerts struct {
		Overdue []string `json:"overdue,omitempty"`
		DueSoon []string `json:"due_soon,omitempty"`
	}
)

// BuildDashboard assembles the dashboard from an open-order snapshot.
// Rows are sorted by score descending; the sort is stable, so ties keep
// insertion order. Alerts are recomputed on every call, never cached:
// Overdue = due before today, DueSoon = today <= due <= today+window days.
func BuildDashboard(open []Order, today Date, dueSoonWindowDays int) Dashboard {
	rows := make([]Order, len(open))
	copy(rows, open)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Score > rows[j].Score })

	dash := Dashboard{
		Rows:  rows,
		Chart: make([]Bar, 0, len(rows)),
	}
	horizon := today.AddDays(dueSoonWindowDays)
	for _, o := range rows {
		dash.Chart = append(dash.Chart, Bar{Name: o.Name, Height: o.Score, Intensity: o.Urgency})
		switch {
		case o.Due.Before(today):
			dash.Alerts.Overdue = append(dash.Alerts.Overdue, o.Name)
		case !o.Due.After(horizon):
			dash.Alerts.DueSoon = append(dash.Alerts.DueSoon, o.Name)
		}
	}
	return dash
}
