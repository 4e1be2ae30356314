package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. Business-rule messages are Arabic; the UI surfaces
// them verbatim.
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "العنصر المطلوب غير موجود")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "العنصر موجود بالفعل")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "بيانات غير صالحة")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "تم تعديل العنصر من جهة أخرى")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "غير مصرح بتنفيذ هذه العملية")
	ErrForbidden           = NewDomainError("FORBIDDEN", "ليس لديك صلاحية الوصول")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "العملية غير مسموحة في الحالة الحالية")
	ErrInsufficientFunds   = NewDomainError("INSUFFICIENT_FUNDS", "الرصيد غير كافٍ لإتمام العملية")
	ErrSafeHasBalance      = NewDomainError("HAS_BALANCE", "لا يمكن حذف خزنة رصيدها غير صفري")
	ErrSafeHasReferences   = NewDomainError("HAS_REFERENCES", "لا يمكن حذف خزنة مرتبطة بسندات أو تحويلات")
)
