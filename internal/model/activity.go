// Package model содержит доменные структуры каталога внеклассных активностей.
package model

// Activity описывает активность: описание, расписание, вместимость и список участников.
// Имя активности является ключом каталога и в JSON-представлении объекта не дублируется.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone возвращает копию активности с собственным срезом участников.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// HasParticipant проверяет, записан ли участник на активность (точное сравнение строк).
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Catalog описывает полный каталог: имя активности -> активность.
type Catalog map[string]Activity

// SignupResult содержит подтверждение записи или отписки участника.
type SignupResult struct {
	Message string `json:"message"`
}
