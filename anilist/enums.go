package anilist

// MediaType distinguishes anime from manga entries.
type MediaType string

const (
	MediaTypeAnime MediaType = "ANIME"
	MediaTypeManga MediaType = "MANGA"
)

// MediaFormat is the release format of a media entry.
type MediaFormat string

const (
	MediaFormatTV      MediaFormat = "TV"
	MediaFormatTVShort MediaFormat = "TV_SHORT"
	MediaFormatMovie   MediaFormat = "MOVIE"
	MediaFormatSpecial MediaFormat = "SPECIAL"
	MediaFormatOVA     MediaFormat = "OVA"
	MediaFormatONA     MediaFormat = "ONA"
	MediaFormatMusic   MediaFormat = "MUSIC"
	MediaFormatManga   MediaFormat = "MANGA"
	MediaFormatNovel   MediaFormat = "NOVEL"
	MediaFormatOneShot MediaFormat = "ONE_SHOT"
)

// MediaStatus is the publishing state of a media entry.
type MediaStatus string

const (
	MediaStatusFinished       MediaStatus = "FINISHED"
	MediaStatusReleasing      MediaStatus = "RELEASING"
	MediaStatusNotYetReleased MediaStatus = "NOT_YET_RELEASED"
	MediaStatusCancelled      MediaStatus = "CANCELLED"
	MediaStatusHiatus         MediaStatus = "HIATUS"
)

// MediaSeason is the quarter of the year a media entry aired in.
type MediaSeason string

const (
	SeasonWinter MediaSeason = "WINTER"
	SeasonSpring MediaSeason = "SPRING"
	SeasonSummer MediaSeason = "SUMMER"
	SeasonFall   MediaSeason = "FALL"
)

// Seasons lists every MediaSeason in calendar order.
var Seasons = []MediaSeason{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall}

// MediaSource is the origin of the story a media entry adapts.
type MediaSource string

const (
	SourceOriginal    MediaSource = "ORIGINAL"
	SourceManga       MediaSource = "MANGA"
	SourceLightNovel  MediaSource = "LIGHT_NOVEL"
	SourceVisualNovel MediaSource = "VISUAL_NOVEL"
	SourceVideoGame   MediaSource = "VIDEO_GAME"
	SourceOther       MediaSource = "OTHER"
	SourceNovel       MediaSource = "NOVEL"
	SourceDoujinshi   MediaSource = "DOUJINSHI"
	SourceAnime       MediaSource = "ANIME"
)

// MediaRelationType describes how two media entries relate.
type MediaRelationType string

const (
	RelationAdaptation  MediaRelationType = "ADAPTATION"
	RelationPrequel     MediaRelationType = "PREQUEL"
	RelationSequel      MediaRelationType = "SEQUEL"
	RelationParent      MediaRelationType = "PARENT"
	RelationSideStory   MediaRelationType = "SIDE_STORY"
	RelationCharacter   MediaRelationType = "CHARACTER"
	RelationSummary     MediaRelationType = "SUMMARY"
	RelationAlternative MediaRelationType = "ALTERNATIVE"
	RelationSpinOff     MediaRelationType = "SPIN_OFF"
	RelationOther       MediaRelationType = "OTHER"
	RelationSource      MediaRelationType = "SOURCE"
	RelationCompilation MediaRelationType = "COMPILATION"
	RelationContains    MediaRelationType = "CONTAINS"
)

// CharacterRole is the weight of a character within a media entry.
type CharacterRole string

const (
	CharacterRoleMain       CharacterRole = "MAIN"
	CharacterRoleSupporting CharacterRole = "SUPPORTING"
	CharacterRoleBackground CharacterRole = "BACKGROUND"
)

// StaffLanguage is the primary language of a staff member.
type StaffLanguage string

const (
	LanguageJapanese   StaffLanguage = "JAPANESE"
	LanguageEnglish    StaffLanguage = "ENGLISH"
	LanguageKorean     StaffLanguage = "KOREAN"
	LanguageItalian    StaffLanguage = "ITALIAN"
	LanguageSpanish    StaffLanguage = "SPANISH"
	LanguagePortuguese StaffLanguage = "PORTUGUESE"
	LanguageFrench     StaffLanguage = "FRENCH"
	LanguageGerman     StaffLanguage = "GERMAN"
	LanguageHebrew     StaffLanguage = "HEBREW"
	LanguageHungarian  StaffLanguage = "HUNGARIAN"
)

// ScoreFormat is the scoring scale chosen by a user.
type ScoreFormat string

const (
	ScorePoint100       ScoreFormat = "POINT_100"
	ScorePoint10Decimal ScoreFormat = "POINT_10_DECIMAL"
	ScorePoint10        ScoreFormat = "POINT_10"
	ScorePoint5         ScoreFormat = "POINT_5"
	ScorePoint3         ScoreFormat = "POINT_3"
)

// UserTitleLanguage is the title language a user prefers.
type UserTitleLanguage string

const (
	TitleRomaji          UserTitleLanguage = "ROMAJI"
	TitleEnglish         UserTitleLanguage = "ENGLISH"
	TitleNative          UserTitleLanguage = "NATIVE"
	TitleRomajiStylised  UserTitleLanguage = "ROMAJI_STYLISED"
	TitleEnglishStylised UserTitleLanguage = "ENGLISH_STYLISED"
	TitleNativeStylised  UserTitleLanguage = "NATIVE_STYLISED"
)

// MediaListStatus represents the status of a media in a user's list.
type MediaListStatus string

const (
	MediaListStatusCurrent   MediaListStatus = "CURRENT"
	MediaListStatusPlanning  MediaListStatus = "PLANNING"
	MediaListStatusCompleted MediaListStatus = "COMPLETED"
	MediaListStatusDropped   MediaListStatus = "DROPPED"
	MediaListStatusPaused    MediaListStatus = "PAUSED"
	MediaListStatusRepeating MediaListStatus = "REPEATING"
)
