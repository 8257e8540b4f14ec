package domain

type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleAdmin RoleType = "admin"
)

type OrderStatusType string

const (
	// OrderStatusCompleted единственный статус заказа. Заказ создается сразу завершенным и больше не меняется.
	OrderStatusCompleted OrderStatusType = "completed"
)

type DepositStatusType string

const (
	DepositStatusPending  DepositStatusType = "pending"
	DepositStatusApproved DepositStatusType = "approved"
	DepositStatusRejected DepositStatusType = "rejected"
)

type NotificationType string

const (
	NotificationTypeOrder   NotificationType = "order"
	NotificationTypeDeposit NotificationType = "deposit"
	NotificationTypeSystem  NotificationType = "system"
)
