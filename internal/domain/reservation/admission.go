package reservation

import (
	"villastay/internal/domain/shared/daterange"
	"villastay/internal/domain/villa"
)

// AdmissionResult is the outcome of checking a proposed stay against the
// existing calendar. A rejection is a normal business answer, not an error,
// and carries every conflicting reservation so the caller can offer
// alternative dates without trial and error.
type AdmissionResult struct {
	Admitted  bool
	Conflicts []*Reservation
}

// CanAdmit decides whether the proposed half-open range may become a new
// reservation on the villa. Cancelled reservations and reservations of other
// villas are ignored. Two ranges conflict only on a strict overlap:
// a stay that begins the day another checks out (or ends the day another
// checks in) is admitted, reflecting same-day turnover.
//
// The only error is a malformed proposed range.
func CanAdmit(villaID villa.VillaID, proposed daterange.DateRange, existing []*Reservation) (AdmissionResult, error) {
	if err := proposed.Validate(); err != nil {
		return AdmissionResult{}, err
	}
	result := AdmissionResult{Admitted: true}
	for _, r := range existing {
		if r == nil || r.VillaID != villaID || !r.IsActive() {
			continue
		}
		if proposed.Overlaps(r.Range) {
			result.Admitted = false
			result.Conflicts = append(result.Conflicts, r)
		}
	}
	return result, nil
}
