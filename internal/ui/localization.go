package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyDropTitle          = "drop_title"
	KeyDropHere           = "drop_here"
	KeyNoFileLoaded       = "no_file_loaded"
	KeyDuration           = "duration"
	KeyCouldNotDetect     = "could_not_detect"
	KeyTimeline           = "timeline"
	KeyStart              = "start"
	KeyEnd                = "end"
	KeyAudioQuality       = "audio_quality"
	KeyExtractAudio       = "extract_audio"
	KeyDropToBegin        = "drop_to_begin"
	KeyReadyToExtract     = "ready_to_extract"
	KeyErrorLoadingVideo  = "error_loading_video"
	KeyExtracting         = "extracting"
	KeyExtractionComplete = "extraction_complete"
	KeyExtractionFailed   = "extraction_failed"
	KeyPleaseDropMP4      = "please_drop_mp4"
	KeyFileDoesNotExist   = "file_does_not_exist"
	KeyInputDoesNotExist  = "input_does_not_exist"
	KeySuccess            = "success"
	KeyExtractedTo        = "extracted_to"
	KeyAudioLength        = "audio_length"
	KeyFailedToExtract    = "failed_to_extract"
	KeyShowInFolder       = "show_in_folder"
	KeyOK                 = "ok"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyExtractionInFlight = "extraction_in_flight"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
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

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "MP4 to MP3 Extractor",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyDropTitle:          "Drag and Drop MP4 File Here:",
		KeyDropHere:           "Drop MP4 file here",
		KeyNoFileLoaded:       "No file loaded",
		KeyDuration:           "Duration",
		KeyCouldNotDetect:     "Could not detect video duration",
		KeyTimeline:           "Timeline Selection",
		KeyStart:              "Start:",
		KeyEnd:                "End:",
		KeyAudioQuality:       "Audio Quality:",
		KeyExtractAudio:       "Extract Audio",
		KeyDropToBegin:        "Drop a file to begin",
		KeyReadyToExtract:     "Ready to extract",
		KeyErrorLoadingVideo:  "Error loading video",
		KeyExtracting:         "Extracting audio...",
		KeyExtractionComplete: "Extraction complete!",
		KeyExtractionFailed:   "Extraction failed",
		KeyPleaseDropMP4:      "Please drop an MP4 file",
		KeyFileDoesNotExist:   "File does not exist",
		KeyInputDoesNotExist:  "Input file does not exist",
		KeySuccess:            "Success",
		KeyExtractedTo:        "Audio extracted successfully to:",
		KeyAudioLength:        "Length",
		KeyFailedToExtract:    "Failed to extract audio:",
		KeyShowInFolder:       "Show in Folder",
		KeyOK:                 "OK",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyExtractionInFlight: "An extraction is already running",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Извлечение MP3 из MP4",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyDropTitle:          "Перетащите MP4 файл сюда:",
		KeyDropHere:           "Перетащите MP4 файл сюда",
		KeyNoFileLoaded:       "Файл не загружен",
		KeyDuration:           "Длительность",
		KeyCouldNotDetect:     "Не удалось определить длительность видео",
		KeyTimeline:           "Выбор фрагмента",
		KeyStart:              "Начало:",
		KeyEnd:                "Конец:",
		KeyAudioQuality:       "Качество аудио:",
		KeyExtractAudio:       "Извлечь аудио",
		KeyDropToBegin:        "Перетащите файл, чтобы начать",
		KeyReadyToExtract:     "Готово к извлечению",
		KeyErrorLoadingVideo:  "Ошибка загрузки видео",
		KeyExtracting:         "Извлечение аудио...",
		KeyExtractionComplete: "Извлечение завершено!",
		KeyExtractionFailed:   "Ошибка извлечения",
		KeyPleaseDropMP4:      "Пожалуйста, перетащите MP4 файл",
		KeyFileDoesNotExist:   "Файл не существует",
		KeyInputDoesNotExist:  "Исходный файл не существует",
		KeySuccess:            "Готово",
		KeyExtractedTo:        "Аудио успешно сохранено в:",
		KeyAudioLength:        "Длина",
		KeyFailedToExtract:    "Не удалось извлечь аудио:",
		KeyShowInFolder:       "Показать в папке",
		KeyOK:                 "ОК",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyExtractionInFlight: "Извлечение уже выполняется",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Extrator de MP4 para MP3",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyDropTitle:          "Arraste e solte o arquivo MP4 aqui:",
		KeyDropHere:           "Solte o arquivo MP4 aqui",
		KeyNoFileLoaded:       "Nenhum arquivo carregado",
		KeyDuration:           "Duração",
		KeyCouldNotDetect:     "Não foi possível detectar a duração do vídeo",
		KeyTimeline:           "Seleção da Linha do Tempo",
		KeyStart:              "Início:",
		KeyEnd:                "Fim:",
		KeyAudioQuality:       "Qualidade do Áudio:",
		KeyExtractAudio:       "Extrair Áudio",
		KeyDropToBegin:        "Solte um arquivo para começar",
		KeyReadyToExtract:     "Pronto para extrair",
		KeyErrorLoadingVideo:  "Erro ao carregar o vídeo",
		KeyExtracting:         "Extraindo áudio...",
		KeyExtractionComplete: "Extração concluída!",
		KeyExtractionFailed:   "Falha na extração",
		KeyPleaseDropMP4:      "Por favor, solte um arquivo MP4",
		KeyFileDoesNotExist:   "O arquivo não existe",
		KeyInputDoesNotExist:  "O arquivo de entrada não existe",
		KeySuccess:            "Sucesso",
		KeyExtractedTo:        "Áudio extraído com sucesso para:",
		KeyAudioLength:        "Duração",
		KeyFailedToExtract:    "Falha ao extrair o áudio:",
		KeyShowInFolder:       "Mostrar na Pasta",
		KeyOK:                 "OK",
		KeyErrorOpeningFolder: "Erro ao abrir a pasta",
		KeyExtractionInFlight: "Uma extração já está em andamento",
	}
}
