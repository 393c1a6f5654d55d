package appointment

import (
	"strings"

	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
	"github.com/BruksfildServices01/clinic-agenda/internal/models"
)

// ===============================
// Appointment Status
// ===============================

// cancelMarkers are matched against lowercased status names when a status
// carries no explicit kind.
var cancelMarkers = []string{"cancel", "anul"}

// IsBillable reports whether a status counts as realized revenue. Unknown
// statuses are not billable.
func IsBillable(st models.AppStatus, ok bool) bool {
	if !ok {
		return false
	}
	return st.IsBillable || st.Kind == models.StatusKindBillable
}

// IsCancelled uses the explicit kind when present and falls back to matching
// the display name.
func IsCancelled(st models.AppStatus, ok bool) bool {
	if !ok {
		return false
	}
	if st.Kind != models.StatusKindNone {
		return st.Kind == models.StatusKindCancelled
	}
	name := strings.ToLower(st.Name)
	for _, m := range cancelMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// DefaultBillable resolves the status used by quick complete: the first
// billable status flagged as default, else the first billable one.
func DefaultBillable(statuses []models.AppStatus) (models.AppStatus, error) {
	var first *models.AppStatus
	for i := range statuses {
		st := statuses[i]
		if !IsBillable(st, true) {
			continue
		}
		if st.IsDefault {
			return st, nil
		}
		if first == nil {
			first = &statuses[i]
		}
	}
	if first == nil {
		return models.AppStatus{}, httperr.ErrBusiness("no_billable_status")
	}
	return *first, nil
}

// CancelledStatus returns the first status in catalog order that means
// cancelled.
func CancelledStatus(statuses []models.AppStatus) (models.AppStatus, error) {
	for _, st := range statuses {
		if IsCancelled(st, true) {
			return st, nil
		}
	}
	return models.AppStatus{}, httperr.ErrBusiness("no_cancelled_status")
}
