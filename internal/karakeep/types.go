package karakeep

// Bookmark mirrors the bookmark object returned by the Karakeep API.
type Bookmark struct {
	ID                  string  `json:"id"`
	CreatedAt           string  `json:"createdAt"`
	ModifiedAt          string  `json:"modifiedAt"`
	Title               string  `json:"title"`
	Archived            bool    `json:"archived"`
	Favourited          bool    `json:"favourited"`
	TaggingStatus       string  `json:"taggingStatus"`
	SummarizationStatus string  `json:"summarizationStatus"`
	Note                *string `json:"note"`
	Summary             *string `json:"summary"`
	Source              string  `json:"source"`
	UserID              string  `json:"userId"`
	Tags                []Tag   `json:"tags"`
	Content             Content `json:"content"`
	Assets              []Asset `json:"assets"`
}

// Content is the crawled payload of a link bookmark.
type Content struct {
	Type              string  `json:"type"`
	URL               string  `json:"url"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	ImageURL          string  `json:"imageUrl"`
	ImageAssetID      string  `json:"imageAssetId"`
	ScreenshotAssetID string  `json:"screenshotAssetId"`
	Favicon           string  `json:"favicon"`
	HTMLContent       *string `json:"htmlContent"`
	ContentAssetID    *string `json:"contentAssetId"`
	CrawledAt         string  `json:"crawledAt"`
	Author            *string `json:"author"`
	Publisher         *string `json:"publisher"`
	DatePublished     *string `json:"datePublished"`
	DateModified      *string `json:"dateModified"`
}

// AssetType is one of screenshot, bannerImage or linkHtmlContent.
type AssetType string

const (
	AssetScreenshot      AssetType = "screenshot"
	AssetBannerImage     AssetType = "bannerImage"
	AssetLinkHTMLContent AssetType = "linkHtmlContent"
)

type Asset struct {
	ID        string    `json:"id"`
	AssetType AssetType `json:"assetType"`
	FileName  *string   `json:"fileName"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListType is "manual" or "query".
type ListType string

const (
	ListManual ListType = "manual"
	ListQuery  ListType = "query"
)

type List struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      *string  `json:"description"`
	Icon             string   `json:"icon"`
	ParentID         *string  `json:"parentId"`
	Type             ListType `json:"type"`
	Query            *string  `json:"query"`
	Public           bool     `json:"public"`
	HasCollaborators bool     `json:"hasCollaborators"`
	UserRole         string   `json:"userRole"`
}

// Paged envelopes. NextCursor is nil on the last page.

type BookmarksResponse struct {
	Bookmarks  []Bookmark `json:"bookmarks"`
	NextCursor *string    `json:"nextCursor"`
}

type ListsResponse struct {
	Lists      []List  `json:"lists"`
	NextCursor *string `json:"nextCursor"`
}

type TagsResponse struct {
	Tags       []Tag   `json:"tags"`
	NextCursor *string `json:"nextCursor"`
}

// BookmarkFilters narrows GetBookmarks. Nil and empty fields are not sent.
type BookmarkFilters struct {
	Archived   *bool
	Favourited *bool
	Lists      []string
}

// ListFilters narrows GetListBookmarks. SortOrder is "asc" or "desc".
type ListFilters struct {
	SortOrder      string
	IncludeContent *bool
}
