package services

// ServiceContainer holds instances of all the application services. This is
// the entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Document  DocumentSvcFacade
	AuditLog  AuditLogSvcFacade
	User      UserSvcFacade
	Reporting ReportingSvcFacade
}
