package usecases

// UseCases agrega os casos de uso expostos aos handlers HTTP
type UseCases struct {
	Catalog    *CatalogUseCase
	Audit      *AuditUseCase
	Attendance *AttendanceUseCase
	Schedule   *ScheduleUseCase
	Document   *DocumentUseCase
}
