package cli

import "context"

// NewIdea runs the interactive submission form: optional author and phone,
// required topic and description. Validation failures and the submit
// outcome surface through notifications; the successful path auto-switches
// to the bank section after a short delay.
func (a *App) NewIdea(ctx context.Context) error {
	author, err := GetSimpleText(a.reader, "Ваше ім'я (необов'язково)", a.out)
	if err != nil {
		return err
	}

	phone, err := GetSimpleText(a.reader, "Телефон (необов'язково)", a.out)
	if err != nil {
		return err
	}
	phone = FormatPhone(phone)

	topic, err := GetSimpleText(a.reader, "Тема ідеї", a.out)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Опишіть вашу ідею", a.out)
	if err != nil {
		return err
	}

	return a.submit.Submit(ctx, author, phone, topic, content)
}
