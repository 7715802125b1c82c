package cli

import "github.com/dgidpl/startup-app/internal/client/nav"

// renderSection prints the static header of a section when the user lands
// on it. The bank listing itself is rendered on demand via the list command.
func renderSection(t nav.Tab) {
	switch t {
	case nav.TabHome:
		printlnFn("Платформа інновацій НПУ")
		printlnFn("Твоя ідея змінить майбутнє Поліції.")
		printlnFn("Пропонуй зміни ('new'), голосуй за найкращі рішення ('bank') та долучайся до обговорення.")
	case nav.TabSubmit:
		printlnFn("Подати ідею — команда 'new' відкриє форму.")
	case nav.TabBank:
		printlnFn("Банк ідей — 'list' покаже пропозиції, 'vote <id> up|down' для голосування.")
	case nav.TabContacts:
		printlnFn("Зв'яжіться з нами")
		printlnFn("Наш сайт: dgidpl.com.ua")
		printlnFn("Комунікативна група: WhatsApp Community")
	}
}
