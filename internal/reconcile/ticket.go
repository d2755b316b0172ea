// internal/reconcile/ticket.go
package reconcile

// TicketWarning 은 수강권 차감 결과의 경고 수준입니다.
type TicketWarning string

const (
	TicketWarningNone      TicketWarning = "none"
	TicketWarningLow       TicketWarning = "low"
	TicketWarningExhausted TicketWarning = "exhausted"
)

// 잔여 횟수가 이 값 이하로 내려가면 low 경고를 냅니다.
const LowBalanceThreshold = 2

// TicketConsumption 은 차감 계산 결과입니다. Consumed 가 false 면 잔여 횟수가
// 이미 0 이어서 차감하지 않은 경우입니다.
type TicketConsumption struct {
	NewCount int
	Warning  TicketWarning
	Consumed bool
}

// ConsumeTicket 은 횟수제 수강권 1회 차감을 계산합니다. 잔여 횟수는 절대
// 음수가 되지 않습니다: 0 이하면 차감 없이 exhausted 경고만 냅니다.
// 호출자는 출결이 실제로 미출석→출석으로 바뀔 때에만 이 결과를 적용해야
// 합니다. (같은 기록을 다시 출석 처리해도 재차감 금지)
func ConsumeTicket(count int) TicketConsumption {
	if count <= 0 {
		return TicketConsumption{NewCount: 0, Warning: TicketWarningExhausted, Consumed: false}
	}

	newCount := count - 1
	switch {
	case newCount == 0:
		return TicketConsumption{NewCount: 0, Warning: TicketWarningExhausted, Consumed: true}
	case newCount <= LowBalanceThreshold:
		return TicketConsumption{NewCount: newCount, Warning: TicketWarningLow, Consumed: true}
	default:
		return TicketConsumption{NewCount: newCount, Warning: TicketWarningNone, Consumed: true}
	}
}
