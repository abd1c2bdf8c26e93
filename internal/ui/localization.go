package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyWelcome         = "welcome"
	KeyWelcomeBody     = "welcome_body"
	KeyLogin           = "login"
	KeyRegister        = "register"
	KeyLogout          = "logout"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyBackendURL      = "backend_url"
	KeyRequestTimeout  = "request_timeout"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyRestartRequired = "restart_required"

	KeyEmail          = "email"
	KeyPassword       = "password"
	KeyName           = "name"
	KeyPhone          = "phone"
	KeyUserType       = "user_type"
	KeyFieldsRequired = "fields_required"
	KeySigningIn      = "signing_in"
	KeySessionExpired = "session_expired"

	KeyTabSymptoms     = "tab_symptoms"
	KeyTabAppointments = "tab_appointments"
	KeyTabDoctors      = "tab_doctors"
	KeyTabAdmin        = "tab_admin"

	KeyDescribeSymptoms   = "describe_symptoms"
	KeySymptomsHint       = "symptoms_hint"
	KeyAnalyze            = "analyze"
	KeyAnalyzing          = "analyzing"
	KeyEnterSymptoms      = "enter_symptoms"
	KeyAnalysis           = "analysis"
	KeyUrgency            = "urgency"
	KeySpecialties        = "specialties"
	KeyRecommendedDoctors = "recommended_doctors"
	KeyNoDoctorsMatched   = "no_doctors_matched"
	KeyNotes              = "notes"
	KeyBook               = "book"
	KeyAnalysisFailed     = "analysis_failed"

	KeyRefresh          = "refresh"
	KeyLoading          = "loading"
	KeyNoAppointments   = "no_appointments"
	KeyMarkCompleted    = "mark_completed"
	KeyCancelAppt       = "cancel_appointment"
	KeyDoctor           = "doctor"
	KeyPatient          = "patient"
	KeyDate             = "date"
	KeySymptoms         = "symptoms"
	KeyLoadFailed       = "load_failed"
	KeyUpdateFailed     = "update_failed"
	KeyUpdatingStatus   = "updating_status"
	KeyNoDoctors        = "no_doctors"
	KeyExperience       = "experience"
	KeyQualifications   = "qualifications"
	KeyFee              = "fee"
	KeyAvailableDays    = "available_days"
	KeySpecializations  = "specializations"
	KeyUnavailable      = "unavailable"
	KeyBookAppointment  = "book_appointment"
	KeyAppointmentDate  = "appointment_date"
	KeyAppointmentTime  = "appointment_time"
	KeyDateRequired     = "date_required"
	KeyInvalidDate      = "invalid_date"
	KeyInvalidTime      = "invalid_time"
	KeyBookingFailed    = "booking_failed"
	KeyBooking          = "booking"
	KeyBooked           = "booked"
	KeyCreateSampleData = "create_sample_data"
	KeySampleDataHint   = "sample_data_hint"
	KeyCreateDoctor     = "create_doctor"
	KeyDoctorUserID     = "doctor_user_id"
	KeyInvalidNumber    = "invalid_number"
	KeyRequestFailed    = "request_failed"
	KeyWorking          = "working"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" and unknown codes keep English.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Hospital Desk",
		KeyWelcome:         "Welcome to Hospital Desk",
		KeyWelcomeBody:     "Describe your symptoms, get matched with the right specialist and book an appointment.",
		KeyLogin:           "Login",
		KeyRegister:        "Register",
		KeyLogout:          "Logout",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyBackendURL:      "Backend URL",
		KeyRequestTimeout:  "Request timeout (seconds)",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyRestartRequired: "Restart the application to connect to the new backend.",

		KeyEmail:          "Email",
		KeyPassword:       "Password",
		KeyName:           "Full name",
		KeyPhone:          "Phone",
		KeyUserType:       "Account type",
		KeyFieldsRequired: "Please fill in all fields",
		KeySigningIn:      "Signing in...",
		KeySessionExpired: "Your session has expired. Please log in again.",

		KeyTabSymptoms:     "Symptoms",
		KeyTabAppointments: "Appointments",
		KeyTabDoctors:      "Doctors",
		KeyTabAdmin:        "Admin",

		KeyDescribeSymptoms:   "Describe your symptoms",
		KeySymptomsHint:       "e.g. chest pain when climbing stairs for two days",
		KeyAnalyze:            "Analyze",
		KeyAnalyzing:          "Analyzing symptoms...",
		KeyEnterSymptoms:      "Please describe your symptoms first",
		KeyAnalysis:           "Analysis",
		KeyUrgency:            "Urgency",
		KeySpecialties:        "Recommended specialties",
		KeyRecommendedDoctors: "Recommended doctors",
		KeyNoDoctorsMatched:   "No matching doctors are available right now.",
		KeyNotes:              "Notes",
		KeyBook:               "Book",
		KeyAnalysisFailed:     "Symptom analysis failed",

		KeyRefresh:          "Refresh",
		KeyLoading:          "Loading...",
		KeyNoAppointments:   "No appointments yet.",
		KeyMarkCompleted:    "Mark completed",
		KeyCancelAppt:       "Cancel",
		KeyDoctor:           "Doctor",
		KeyPatient:          "Patient",
		KeyDate:             "Date",
		KeySymptoms:         "Symptoms",
		KeyLoadFailed:       "Could not load data",
		KeyUpdateFailed:     "Could not update the appointment",
		KeyUpdatingStatus:   "Updating appointment...",
		KeyNoDoctors:        "No doctors are listed yet.",
		KeyExperience:       "Experience",
		KeyQualifications:   "Qualifications",
		KeyFee:              "Consultation fee",
		KeyAvailableDays:    "Available days",
		KeySpecializations:  "Specializations",
		KeyUnavailable:      "Currently unavailable",
		KeyBookAppointment:  "Book appointment",
		KeyAppointmentDate:  "Date (YYYY-MM-DD)",
		KeyAppointmentTime:  "Time (HH:MM)",
		KeyDateRequired:     "Please enter an appointment date",
		KeyInvalidDate:      "Date must look like 2025-01-31",
		KeyInvalidTime:      "Time must look like 09:30",
		KeyBookingFailed:    "Booking failed",
		KeyBooking:          "Booking...",
		KeyBooked:           "Appointment booked",
		KeyCreateSampleData: "Create sample data",
		KeySampleDataHint:   "Adds the demo admin and three doctors. Safe to run more than once.",
		KeyCreateDoctor:     "Create doctor profile",
		KeyDoctorUserID:     "Doctor account ID",
		KeyInvalidNumber:    "Experience and fee must be non-negative numbers",
		KeyRequestFailed:    "Request failed",
		KeyWorking:          "Working...",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Больничная регистратура",
		KeyWelcome:         "Добро пожаловать",
		KeyWelcomeBody:     "Опишите симптомы, найдите подходящего специалиста и запишитесь на приём.",
		KeyLogin:           "Войти",
		KeyRegister:        "Регистрация",
		KeyLogout:          "Выйти",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyBackendURL:      "Адрес сервера",
		KeyRequestTimeout:  "Тайм-аут запроса (секунды)",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки сохранены!",
		KeyRestartRequired: "Перезапустите приложение, чтобы подключиться к новому серверу.",

		KeyEmail:          "Эл. почта",
		KeyPassword:       "Пароль",
		KeyName:           "Полное имя",
		KeyPhone:          "Телефон",
		KeyUserType:       "Тип учётной записи",
		KeyFieldsRequired: "Пожалуйста, заполните все поля",
		KeySigningIn:      "Вход...",
		KeySessionExpired: "Сессия истекла. Войдите снова.",

		KeyTabSymptoms:     "Симптомы",
		KeyTabAppointments: "Приёмы",
		KeyTabDoctors:      "Врачи",
		KeyTabAdmin:        "Администрирование",

		KeyDescribeSymptoms:   "Опишите ваши симптомы",
		KeySymptomsHint:       "например, боль в груди при подъёме по лестнице два дня",
		KeyAnalyze:            "Анализировать",
		KeyAnalyzing:          "Анализ симптомов...",
		KeyEnterSymptoms:      "Сначала опишите симптомы",
		KeyAnalysis:           "Анализ",
		KeyUrgency:            "Срочность",
		KeySpecialties:        "Рекомендуемые специальности",
		KeyRecommendedDoctors: "Рекомендуемые врачи",
		KeyNoDoctorsMatched:   "Подходящих врачей сейчас нет.",
		KeyNotes:              "Примечания",
		KeyBook:               "Записаться",
		KeyAnalysisFailed:     "Не удалось проанализировать симптомы",

		KeyRefresh:          "Обновить",
		KeyLoading:          "Загрузка...",
		KeyNoAppointments:   "Приёмов пока нет.",
		KeyMarkCompleted:    "Отметить завершённым",
		KeyCancelAppt:       "Отменить",
		KeyDoctor:           "Врач",
		KeyPatient:          "Пациент",
		KeyDate:             "Дата",
		KeySymptoms:         "Симптомы",
		KeyLoadFailed:       "Не удалось загрузить данные",
		KeyUpdateFailed:     "Не удалось обновить приём",
		KeyUpdatingStatus:   "Обновление приёма...",
		KeyNoDoctors:        "Список врачей пуст.",
		KeyExperience:       "Опыт",
		KeyQualifications:   "Квалификация",
		KeyFee:              "Стоимость приёма",
		KeyAvailableDays:    "Дни приёма",
		KeySpecializations:  "Специализации",
		KeyUnavailable:      "Сейчас не принимает",
		KeyBookAppointment:  "Запись на приём",
		KeyAppointmentDate:  "Дата (ГГГГ-ММ-ДД)",
		KeyAppointmentTime:  "Время (ЧЧ:ММ)",
		KeyDateRequired:     "Укажите дату приёма",
		KeyInvalidDate:      "Дата должна быть в формате 2025-01-31",
		KeyInvalidTime:      "Время должно быть в формате 09:30",
		KeyBookingFailed:    "Не удалось записаться",
		KeyBooking:          "Запись...",
		KeyBooked:           "Вы записаны на приём",
		KeyCreateSampleData: "Создать демо-данные",
		KeySampleDataHint:   "Добавляет демо-администратора и трёх врачей. Можно запускать повторно.",
		KeyCreateDoctor:     "Создать профиль врача",
		KeyDoctorUserID:     "ID учётной записи врача",
		KeyInvalidNumber:    "Опыт и стоимость должны быть неотрицательными числами",
		KeyRequestFailed:    "Ошибка запроса",
		KeyWorking:          "Выполняется...",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Balcão Hospitalar",
		KeyWelcome:         "Bem-vindo",
		KeyWelcomeBody:     "Descreva seus sintomas, encontre o especialista certo e marque uma consulta.",
		KeyLogin:           "Entrar",
		KeyRegister:        "Cadastrar",
		KeyLogout:          "Sair",
		KeySettings:        "Configurações",
		KeyLanguage:        "Idioma",
		KeyBackendURL:      "URL do servidor",
		KeyRequestTimeout:  "Tempo limite da requisição (segundos)",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyRestartRequired: "Reinicie o aplicativo para conectar ao novo servidor.",

		KeyEmail:          "E-mail",
		KeyPassword:       "Senha",
		KeyName:           "Nome completo",
		KeyPhone:          "Telefone",
		KeyUserType:       "Tipo de conta",
		KeyFieldsRequired: "Preencha todos os campos",
		KeySigningIn:      "Entrando...",
		KeySessionExpired: "Sua sessão expirou. Entre novamente.",

		KeyTabSymptoms:     "Sintomas",
		KeyTabAppointments: "Consultas",
		KeyTabDoctors:      "Médicos",
		KeyTabAdmin:        "Administração",

		KeyDescribeSymptoms:   "Descreva seus sintomas",
		KeySymptomsHint:       "ex.: dor no peito ao subir escadas há dois dias",
		KeyAnalyze:            "Analisar",
		KeyAnalyzing:          "Analisando sintomas...",
		KeyEnterSymptoms:      "Descreva seus sintomas primeiro",
		KeyAnalysis:           "Análise",
		KeyUrgency:            "Urgência",
		KeySpecialties:        "Especialidades recomendadas",
		KeyRecommendedDoctors: "Médicos recomendados",
		KeyNoDoctorsMatched:   "Nenhum médico compatível disponível no momento.",
		KeyNotes:              "Observações",
		KeyBook:               "Agendar",
		KeyAnalysisFailed:     "Falha na análise de sintomas",

		KeyRefresh:          "Atualizar",
		KeyLoading:          "Carregando...",
		KeyNoAppointments:   "Nenhuma consulta ainda.",
		KeyMarkCompleted:    "Marcar como concluída",
		KeyCancelAppt:       "Cancelar",
		KeyDoctor:           "Médico",
		KeyPatient:          "Paciente",
		KeyDate:             "Data",
		KeySymptoms:         "Sintomas",
		KeyLoadFailed:       "Não foi possível carregar os dados",
		KeyUpdateFailed:     "Não foi possível atualizar a consulta",
		KeyUpdatingStatus:   "Atualizando consulta...",
		KeyNoDoctors:        "Nenhum médico cadastrado.",
		KeyExperience:       "Experiência",
		KeyQualifications:   "Qualificações",
		KeyFee:              "Valor da consulta",
		KeyAvailableDays:    "Dias disponíveis",
		KeySpecializations:  "Especializações",
		KeyUnavailable:      "Indisponível no momento",
		KeyBookAppointment:  "Agendar consulta",
		KeyAppointmentDate:  "Data (AAAA-MM-DD)",
		KeyAppointmentTime:  "Hora (HH:MM)",
		KeyDateRequired:     "Informe a data da consulta",
		KeyInvalidDate:      "A data deve ser como 2025-01-31",
		KeyInvalidTime:      "A hora deve ser como 09:30",
		KeyBookingFailed:    "Falha no agendamento",
		KeyBooking:          "Agendando...",
		KeyBooked:           "Consulta agendada",
		KeyCreateSampleData: "Criar dados de exemplo",
		KeySampleDataHint:   "Adiciona o administrador de demonstração e três médicos. Pode ser executado mais de uma vez.",
		KeyCreateDoctor:     "Criar perfil de médico",
		KeyDoctorUserID:     "ID da conta do médico",
		KeyInvalidNumber:    "Experiência e valor devem ser números não negativos",
		KeyRequestFailed:    "Falha na requisição",
		KeyWorking:          "Processando...",
	}
}
