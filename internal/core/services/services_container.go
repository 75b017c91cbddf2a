package services

import (
	portsrepo "github.com/doctrackph/doctrack-backend/internal/core/ports/repositories"
	portssvc "github.com/doctrackph/doctrack-backend/internal/core/ports/services"
)

// NewServiceContainer wires all application services from their repository
// ports.
func NewServiceContainer(
	docRepo portsrepo.DocumentRepository,
	typeRepo portsrepo.DocumentTypeRepository,
	logRepo portsrepo.LogRepository,
	userRepo portsrepo.UserRepository,
) *portssvc.ServiceContainer {
	auditSvc := NewAuditLogService(logRepo, userRepo)
	return &portssvc.ServiceContainer{
		Document:  NewDocumentService(docRepo, typeRepo, auditSvc),
		AuditLog:  auditSvc,
		User:      NewUserService(userRepo),
		Reporting: NewReportingService(docRepo, userRepo, logRepo),
	}
}
