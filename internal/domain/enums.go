package domain

// RequestStatus is the lifecycle state of a request. There is no transition
// table: any status may be set from any other.
type RequestStatus string

const (
	RequestStatusSubmitted        RequestStatus = "submitted"
	RequestStatusDraft            RequestStatus = "draft"
	RequestStatusInProgress       RequestStatus = "in progress"
	RequestStatusAwaitingFeedback RequestStatus = "awaiting feedback"
	RequestStatusPendingApproval  RequestStatus = "pending approval"
	RequestStatusCompleted        RequestStatus = "completed"
	RequestStatusCanceled         RequestStatus = "canceled"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusSubmitted, RequestStatusDraft, RequestStatusInProgress,
		RequestStatusAwaitingFeedback, RequestStatusPendingApproval,
		RequestStatusCompleted, RequestStatusCanceled:
		return true
	}
	return false
}

// IsInitial reports whether a new request may be created in this state.
func (s RequestStatus) IsInitial() bool {
	return s == RequestStatusSubmitted || s == RequestStatusDraft
}

// RequestType is the work category of a request.
type RequestType string

const (
	RequestTypeAnimation          RequestType = "Animation"
	RequestTypeVideoEditing       RequestType = "Video Editing"
	RequestType3DDesign           RequestType = "3D Design"
	RequestTypeWebDesign          RequestType = "Web Design"
	RequestTypeDesignForPrint     RequestType = "Design for Print"
	RequestTypePresentation       RequestType = "Presentation"
	RequestTypeMarketResearch     RequestType = "Market Research"
	RequestTypePhotography        RequestType = "Photography"
	RequestTypeVideography        RequestType = "Videography"
	RequestTypeSocialMedia        RequestType = "Social Media"
	RequestTypeDigitalMarketing   RequestType = "Digital Marketing"
	RequestTypeMediaManagement    RequestType = "Media Management"
	RequestTypeCompanyEvents      RequestType = "Company Events"
	RequestTypeBrandDesign        RequestType = "Brand Design"
	RequestTypeBrandManagement    RequestType = "Brand Management"
	RequestTypePreProduction      RequestType = "Pre-Production"
	RequestTypeBudgetingStrategy  RequestType = "Budgeting & Strategy"
	RequestTypeTeamLogistics      RequestType = "Team & Logistics"
	RequestTypeClientInteraction  RequestType = "Client Interaction"
	RequestTypeDirecting          RequestType = "Directing"
	RequestTypeSoundDesign        RequestType = "Sound Design"
	RequestTypeSoundEngineering   RequestType = "Sound Engineering"
	RequestTypeProjectManagement  RequestType = "Project Management"
	RequestTypeAccounting         RequestType = "Accounting"
	RequestTypeOther              RequestType = "Other"
)

// RequestTypes lists every request type in display order.
var RequestTypes = []RequestType{
	RequestTypeAnimation, RequestTypeVideoEditing, RequestType3DDesign, RequestTypeWebDesign,
	RequestTypeDesignForPrint, RequestTypePresentation, RequestTypeMarketResearch,
	RequestTypePhotography, RequestTypeVideography, RequestTypeSocialMedia,
	RequestTypeDigitalMarketing, RequestTypeMediaManagement, RequestTypeCompanyEvents,
	RequestTypeBrandDesign, RequestTypeBrandManagement, RequestTypePreProduction,
	RequestTypeBudgetingStrategy, RequestTypeTeamLogistics, RequestTypeClientInteraction,
	RequestTypeDirecting, RequestTypeSoundDesign, RequestTypeSoundEngineering,
	RequestTypeProjectManagement, RequestTypeAccounting, RequestTypeOther,
}

func (t RequestType) String() string { return string(t) }

func (t RequestType) IsValid() bool {
	for _, known := range RequestTypes {
		if t == known {
			return true
		}
	}
	return false
}

// EntityType identifies the kind of entity an activity record refers to.
type EntityType string

const (
	EntityTypeRequest     EntityType = "request"
	EntityTypeClient      EntityType = "client"
	EntityTypeCostTracker EntityType = "cost_tracker"
	EntityTypeComment     EntityType = "comment"
	EntityTypeLink        EntityType = "link"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeRequest, EntityTypeClient, EntityTypeCostTracker, EntityTypeComment, EntityTypeLink:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the activity log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionClone  AuditAction = "clone"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionClone:
		return true
	}
	return false
}

// ReportSortField selects the column a time report is ordered by.
type ReportSortField string

const (
	ReportSortDate          ReportSortField = "date"
	ReportSortRequestNumber ReportSortField = "requestNumber"
)

func (f ReportSortField) IsValid() bool {
	return f == ReportSortDate || f == ReportSortRequestNumber
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// ReportMode selects row-per-entry output or rows aggregated by
// (request, user).
type ReportMode string

const (
	ReportModeEntries    ReportMode = "entries"
	ReportModeAggregated ReportMode = "aggregated"
)

func (m ReportMode) IsValid() bool {
	return m == ReportModeEntries || m == ReportModeAggregated
}
