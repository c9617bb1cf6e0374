package models

// ProfileRole defines the roles a profile can hold
type ProfileRole string

const (
	ProfileRoleTenant     ProfileRole = "tenant"
	ProfileRoleWorker     ProfileRole = "worker"
	ProfileRoleSupervisor ProfileRole = "supervisor"
)

// AssignmentStatus represents the lifecycle state of a worker assignment
type AssignmentStatus string

const (
	AssignmentStatusAssigned      AssignmentStatus = "assigned"
	AssignmentStatusAccepted      AssignmentStatus = "accepted"
	AssignmentStatusInProgress    AssignmentStatus = "in_progress"
	AssignmentStatusPendingReview AssignmentStatus = "pending_review"
	AssignmentStatusCompleted     AssignmentStatus = "completed"
	AssignmentStatusRejected      AssignmentStatus = "rejected"
)

// ComplaintStatus is derived from the states of a complaint's assignments;
// it is never set directly by a caller.
type ComplaintStatus string

const (
	ComplaintStatusPending       ComplaintStatus = "pending"
	ComplaintStatusInProgress    ComplaintStatus = "in_progress"
	ComplaintStatusPendingReview ComplaintStatus = "pending_review"
	ComplaintStatusResolved      ComplaintStatus = "resolved"
)

// ComplaintPriority represents the priority of a complaint
type ComplaintPriority string

const (
	ComplaintPriorityLow    ComplaintPriority = "low"
	ComplaintPriorityMedium ComplaintPriority = "medium"
	ComplaintPriorityHigh   ComplaintPriority = "high"
)

// VisitOutcome represents how a visit ended
type VisitOutcome string

const (
	VisitOutcomeCompleted VisitOutcome = "completed"
	VisitOutcomeRevisit   VisitOutcome = "revisit"
)

// IsValid checks if the ProfileRole is valid
func (r ProfileRole) IsValid() bool {
	switch r {
	case ProfileRoleTenant, ProfileRoleWorker, ProfileRoleSupervisor:
		return true
	}
	return false
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusAssigned, AssignmentStatusAccepted, AssignmentStatusInProgress,
		AssignmentStatusPendingReview, AssignmentStatusCompleted, AssignmentStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further worker action is accepted from this state
func (s AssignmentStatus) IsTerminal() bool {
	return s == AssignmentStatusCompleted || s == AssignmentStatusRejected
}

// IsValid checks if the ComplaintPriority is valid
func (p ComplaintPriority) IsValid() bool {
	switch p {
	case ComplaintPriorityLow, ComplaintPriorityMedium, ComplaintPriorityHigh:
		return true
	}
	return false
}

// IsValid checks if the VisitOutcome is valid
func (o VisitOutcome) IsValid() bool {
	switch o {
	case VisitOutcomeCompleted, VisitOutcomeRevisit:
		return true
	}
	return false
}
