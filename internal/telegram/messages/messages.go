package messages

// Общие
const (
	Error  = "❌ Ошибка. Пожалуйста, попробуйте позже."
	Cancel = "Процесс авторизации отменен."
)

// Авторизация по номеру телефона
const (
	Greeting = "Привет! Вы можете поделиться своим номером телефона или ввести его вручную."

	ButtonSharePhone = "Поделиться номером"

	CheckingPhone = "Проверяем ваш номер телефона..."

	Authorized = "Вы успешно авторизованы. Теперь вы будете получать уведомления."

	NotAuthorized = "Ваш номер телефона не зарегистрирован в нашей базе. " +
		"Пожалуйста обратитесь за помощью в службу поддержки Book-Eat."

	AuthorizationFailed = "Произошла ошибка при проверке номера телефона. Попробуйте позже."

	InvalidPhone = "Некорректный номер телефона. Допустимы только цифры и символы +, -, (, ). " +
		"Введите номер ещё раз или отправьте /cancel."

	NotUnderstood = "Я вас не понимаю. Пожалуйста, используйте команду /start для начала " +
		"авторизации или /cancel для отмены."

	Idle = "Добро пожаловать в нашего бота. Пожалуйста введите команду /start чтобы начать " +
		"авторизацию. Если вы уже авторизированны - ожидайте уведомлений о заказах."
)

// Ответы на нажатия кнопок заказа
const (
	ActionConfirmed = "✅ Заказ подтверждён"
	ActionCancelled = "❌ Заказ отменён"
	ActionCompleted = "🏁 Заказ завершён"
	ActionDone      = "Готово"
	ActionFailed    = "❌ Не удалось обновить заказ. Попробуйте позже."
)
