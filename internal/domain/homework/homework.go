package homework

import "fmt"

// Status is the review state the API reports for a submission.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps each recognized status to the text shown to the user.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Homework is a single submission record as returned by the API.
// Records are created remotely and are read-only here.
type Homework struct {
	Name        string `json:"homework_name"`
	Status      Status `json:"status"`
	DateUpdated string `json:"date_updated"`
}

// StatusResponse is the top-level API payload. Homeworks and CurrentDate
// are pointers so that an absent key can be told apart from an empty list
// or a zero timestamp.
type StatusResponse struct {
	Homeworks   *[]Homework `json:"homeworks"`
	CurrentDate *int64      `json:"current_date"`
}

// CheckResponse validates the API payload and extracts the homework list.
// An empty list is a valid "no updates" result, not an error.
func CheckResponse(resp *StatusResponse) ([]Homework, error) {
	if resp == nil {
		return nil, NewFault(FaultMissingKey, "CheckResponse", "Ответ приходит не в виде словаря", nil)
	}
	if resp.Homeworks == nil {
		return nil, NewFault(FaultMissingKey, "CheckResponse", "В ответе отсутствует ключ homeworks", nil)
	}
	if resp.CurrentDate == nil {
		return nil, NewFault(FaultMissingKey, "CheckResponse", "В ответе отсутствует ключ current_date", nil)
	}
	return *resp.Homeworks, nil
}

// StatusMessage builds the chat notification for a single record.
func StatusMessage(hw Homework) (string, error) {
	if hw.Name == "" {
		return "", NewFault(FaultBadRecord, "StatusMessage", "В ответе от АПИ отсутствует ключ homework_name", nil)
	}
	verdict, ok := Verdicts[hw.Status]
	if !ok {
		return "", NewFault(FaultBadRecord, "StatusMessage",
			fmt.Sprintf("Неизвестный статус работы %q", hw.Status), nil)
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", hw.Name, verdict), nil
}
