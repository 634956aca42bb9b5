// Package texts is the localized text catalog: a pure (language, key)
// lookup over the bot's user-facing strings.
package texts

import (
	"strings"

	"tunebot/internal/domain"
)

// Key identifies one catalog entry.
type Key string

const (
	Start           Key = "start"
	Help            Key = "help"
	ChooseLanguage  Key = "choose_language"
	LangSelected    Key = "language_selected"
	SendAudio       Key = "send_audio"
	FileTooLarge    Key = "file_too_large"
	Processing      Key = "processing"
	NoMatch         Key = "no_match"
	Result          Key = "result"
	Downloading     Key = "downloading"
	DownloadDone    Key = "download_complete"
	DownloadFailed  Key = "download_failed"
	EditMetadata    Key = "edit_metadata"
	MetadataUpdated Key = "metadata_updated"
	InvalidMetadata Key = "invalid_metadata_format"
	EditStarted     Key = "metadata_editing_started"
)

// Get returns the catalog string for lang and key. Unknown languages fall
// back to English; an unknown key yields the empty string.
func Get(lang domain.Language, key Key) string {
	c, ok := catalog[lang]
	if !ok {
		c = catalog[domain.LangEN]
	}
	return c[key]
}

// RenderResult fills the recognition result template for one track.
func RenderResult(lang domain.Language, track *domain.Track) string {
	r := strings.NewReplacer(
		"{title}", track.Title,
		"{artist}", track.Artist,
		"{album}", track.Album,
		"{track_id}", track.ID,
	)
	return r.Replace(Get(lang, Result))
}

var catalog = map[domain.Language]map[Key]string{
	domain.LangEN: {
		Start: "🎵 Welcome to Music Recognition & Social Media Downloader Bot!\n\n" +
			"Features:\n" +
			"1. Send me any audio/video file (<20MB) to identify the music\n" +
			"2. Send me links from social media (YouTube, Instagram, etc.) to download content\n" +
			"3. Use inline mode to search and share music (@your_bot_username query)\n" +
			"4. Edit music metadata (title, artist, album)\n\n" +
			"Use /help to see all commands.",
		Help: "Available commands:\n" +
			"/start - Start the bot\n" +
			"/help - Show this help message\n" +
			"/language - Change language\n" +
			"/edit_metadata - Edit music file metadata\n\n" +
			"Simply send me an audio/video file to identify music or a social media link to download content.",
		ChooseLanguage: "Please choose your language:",
		LangSelected:   "Language changed to English!",
		SendAudio:      "Please send an audio or video file to identify the music.",
		FileTooLarge:   "File is too large. Please send a file smaller than 20MB.",
		Processing:     "Processing your file... Please wait.",
		NoMatch:        "Sorry, I couldn't identify this track.",
		Result: "*Title:* {title}\n" +
			"*Artist:* {artist}\n" +
			"*Album:* {album}\n" +
			"*Link:* [Listen on Shazam](https://www.shazam.com/track/{track_id}/{title})",
		Downloading:     "Downloading content... Please wait.",
		DownloadDone:    "Download complete! Here's your content:",
		DownloadFailed:  "Failed to download content. Please check the link and try again.",
		EditMetadata:    "Please send the music file you want to edit.",
		MetadataUpdated: "Metadata updated successfully!",
		InvalidMetadata: "Invalid format. Please use:\nTitle: ...\nArtist: ...\nAlbum: ...",
		EditStarted: "File received. Now send the new metadata in this format:\n" +
			"Title: New Title\n" +
			"Artist: New Artist\n" +
			"Album: New Album",
	},
	domain.LangFA: {
		Start: "🎵 به ربات شناسایی موسیقی و دانلود از شبکه های اجتماعی خوش آمدید!\n\n" +
			"ویژگی ها:\n" +
			"1. هر فایل صوتی/تصویری کمتر از ۲۰ مگابایت بفرستید تا موسیقی آن شناسایی شود\n" +
			"2. لینک شبکه های اجتماعی (یوتیوب، اینستاگرام و ...) بفرستید تا محتوا دانلود شود\n" +
			"3. از حالت اینلاین برای جستجو و اشتراک گذاری موسیقی استفاده کنید (@نام_ربات کلمه_جستجو)\n" +
			"4. ویرایش اطلاعات فایل های موسیقی (عنوان، هنرمند، آلبوم)\n\n" +
			"برای مشاهده دستورات از /help استفاده کنید.",
		Help: "دستورات موجود:\n" +
			"/start - شروع ربات\n" +
			"/help - نمایش این پیام راهنما\n" +
			"/language - تغییر زبان\n" +
			"/edit_metadata - ویرایش اطلاعات فایل موسیقی\n\n" +
			"فقط کافیست یک فایل صوتی/تصویری بفرستید تا موسیقی آن شناسایی شود یا یک لینک شبکه اجتماعی برای دانلود محتوا.",
		ChooseLanguage: "لطفا زبان خود را انتخاب کنید:",
		LangSelected:   "زبان به فارسی تغییر یافت!",
		SendAudio:      "لطفا یک فایل صوتی یا تصویری برای شناسایی موسیقی بفرستید.",
		FileTooLarge:   "فایل بسیار بزرگ است. لطفا فایلی کوچکتر از ۲۰ مگابایت بفرستید.",
		Processing:     "در حال پردازش فایل... لطفا صبر کنید.",
		NoMatch:        "متاسفانه نتوانستم این ترک را شناسایی کنم.",
		Result: "*عنوان:* {title}\n" +
			"*هنرمند:* {artist}\n" +
			"*آلبوم:* {album}\n" +
			"*لینک:* [گوش دادن در Shazam](https://www.shazam.com/track/{track_id}/{title})",
		Downloading:     "در حال دانلود محتوا... لطفا صبر کنید.",
		DownloadDone:    "دانلود تکمیل شد! محتوای شما:",
		DownloadFailed:  "دانلود محتوا ناموفق بود. لطفا لینک را بررسی کرده و دوباره تلاش کنید.",
		EditMetadata:    "لطفا فایل موسیقی که می خواهید اطلاعات آن را ویرایش کنید بفرستید.",
		MetadataUpdated: "اطلاعات با موفقیت به روز شد!",
		InvalidMetadata: "فرمت نامعتبر. لطفا از این فرمت استفاده کنید:\nTitle: ...\nArtist: ...\nAlbum: ...",
		EditStarted: "فایل دریافت شد. حالا اطلاعات جدید را به این فرمت بفرستید:\n" +
			"Title: عنوان جدید\n" +
			"Artist: هنرمند جدید\n" +
			"Album: آلبوم جدید",
	},
}
