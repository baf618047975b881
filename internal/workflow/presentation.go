package workflow

import "github.com/SergeyBogomolovv/techmarket/internal/entities"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeverityNeutral Severity = "neutral"
)

type Presentation struct {
	Label    string
	Severity Severity
}

var badges = map[entities.OrderStatus]Presentation{
	entities.StatusPending:   {Label: "Pending", Severity: SeverityNeutral},
	entities.StatusConfirmed: {Label: "Confirmed", Severity: SeverityInfo},
	entities.StatusShipped:   {Label: "Shipped", Severity: SeverityWarning},
	entities.StatusDelivered: {Label: "Delivered", Severity: SeveritySuccess},
	entities.StatusCancelled: {Label: "Cancelled", Severity: SeverityDanger},
}

// Badge maps a status to its display label and severity. Unknown values are shown
// as is with neutral styling.
func Badge(status entities.OrderStatus) Presentation {
	if p, ok := badges[status]; ok {
		return p
	}
	return Presentation{Label: string(status), Severity: SeverityNeutral}
}

var actionLabels = map[Action]string{
	Approve:  "Approve",
	Reject:   "Cancel",
	Dispatch: "Ship",
	Complete: "Mark delivered",
}

func (a Action) Label() string {
	if l, ok := actionLabels[a]; ok {
		return l
	}
	return string(a)
}
