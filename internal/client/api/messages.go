package api

// MsgSessionExpired is shown when the session cannot be renewed.
const MsgSessionExpired = "Сессия истекла"

// msgRequestFailed is the fallback when the backend returns no detail at all.
const msgRequestFailed = "Ошибка запроса"

// translations maps the backend's known detail strings to user-facing
// Russian text. Unrecognized details pass through untranslated; that is the
// intended fallback, not an omission.
var translations = map[string]string{
	"Incorrect username or password": "Неверный логин или пароль",
	"Login already registered":       "Пользователь с таким email уже зарегистрирован",
	"Could not validate credentials": "Не удалось проверить учетные данные",
	"Not authenticated":              "Требуется вход в систему",
}

// TranslateDetail returns the localized text for a known backend detail
// string, or the detail itself when it is not in the table.
func TranslateDetail(detail string) string {
	if t, ok := translations[detail]; ok {
		return t
	}
	return detail
}
