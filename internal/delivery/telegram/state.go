package telegram

import (
	"sync"
	"time"
)

// pendingShifts хранит дату смены, для которой чат должен прислать время.
// Обработчики telebot вызываются из разных горутин.
type pendingShifts struct {
	mu    sync.Mutex
	dates map[int64]time.Time
}

func (p *pendingShifts) Set(chatID int64, date time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dates == nil {
		p.dates = make(map[int64]time.Time)
	}
	p.dates[chatID] = date
}

func (p *pendingShifts) Get(chatID int64) (time.Time, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	d, ok := p.dates[chatID]
	return d, ok
}

func (p *pendingShifts) Clear(chatID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.dates, chatID)
}
