package normalize

// stopwords are removed as whole words before alias matching: vendor
// names, edition and release qualifiers, architecture and locale tags.
var stopwords = []string{
	// vendors
	"microsoft", "google", "mozilla", "adobe", "oracle", "apple", "videolan",
	"inc", "corporation", "corp", "llc", "ltd", "gmbh", "foundation", "the",
	// editions and qualifiers
	"professional", "enterprise", "standard", "ultimate", "edition",
	"community", "free", "update", "version", "release", "stable",
	// architecture and locale
	"x64", "x86", "x86_64", "amd64", "arm64", "64-bit", "32-bit", "64bit",
	"32bit", "win64", "win32", "en-us", "pt-pt", "pt-br",
}

// Alias maps a canonical key to the names it is known by. Names may be
// written naturally; they are cleaned the same way as the input.
type Alias struct {
	Key   string
	Names []string
}

var aliases = []Alias{
	{Key: "chrome", Names: []string{"google chrome", "chrome browser"}},
	{Key: "firefox", Names: []string{"mozilla firefox", "firefox esr"}},
	{Key: "edge", Names: []string{"microsoft edge", "edge browser"}},
	{Key: "brave", Names: []string{"brave browser"}},
	{Key: "opera", Names: []string{"opera browser"}},
	{Key: "thunderbird", Names: []string{"mozilla thunderbird"}},
	{Key: "vlc", Names: []string{"vlc media player"}},
	{Key: "7zip", Names: []string{"7-zip", "7 zip"}},
	{Key: "winrar", Names: []string{"win rar"}},
	{Key: "notepad++", Names: []string{"notepad++", "notepad plus plus", "notepadplusplus"}},
	{Key: "vscode", Names: []string{"visual studio code", "vs code"}},
	{Key: "git", Names: []string{"git for windows"}},
	{Key: "nodejs", Names: []string{"node.js", "node js", "node"}},
	{Key: "python", Names: []string{"python 3", "python3"}},
	{Key: "java", Names: []string{"java runtime environment", "jre", "java 8"}},
	{Key: "zoom", Names: []string{"zoom workplace", "zoom client"}},
	{Key: "teams", Names: []string{"microsoft teams", "teams classic"}},
	{Key: "slack", Names: []string{"slack desktop"}},
	{Key: "putty", Names: []string{"putty release"}},
	{Key: "winscp", Names: []string{"win scp"}},
	{Key: "filezilla", Names: []string{"filezilla client"}},
	{Key: "keepassxc", Names: []string{"keepass xc"}},
	{Key: "keepass", Names: []string{"keepass password safe"}},
	{Key: "libreoffice", Names: []string{"libre office"}},
	{Key: "gimp", Names: []string{"gnu image manipulation program"}},
	{Key: "audacity", Names: []string{"audacity audio editor"}},
	{Key: "obs", Names: []string{"obs studio", "open broadcaster software"}},
	{Key: "wireshark", Names: []string{"wireshark network analyzer"}},
	{Key: "teamviewer", Names: []string{"team viewer"}},
	{Key: "anydesk", Names: []string{"any desk"}},
	{Key: "greenshot", Names: []string{"green shot"}},
	{Key: "paintnet", Names: []string{"paint.net", "paint net"}},
	{Key: "sumatrapdf", Names: []string{"sumatra pdf"}},
	{Key: "acrobat-reader", Names: []string{"acrobat reader", "adobe reader", "acrobat reader dc"}},
	{Key: "foxit-reader", Names: []string{"foxit pdf reader", "foxit reader"}},
	{Key: "powershell", Names: []string{"powershell 7", "powershell core"}},
	{Key: "terminal", Names: []string{"windows terminal"}},
	{Key: "powertoys", Names: []string{"power toys"}},
	{Key: "docker-desktop", Names: []string{"docker desktop"}},
	{Key: "postman", Names: []string{"postman agent"}},
	{Key: "spotify", Names: []string{"spotify music"}},
	{Key: "dropbox", Names: []string{"dropbox client"}},
	{Key: "onedrive", Names: []string{"microsoft onedrive", "one drive"}},
	{Key: "virtualbox", Names: []string{"oracle vm virtualbox", "vm virtualbox"}},
	{Key: "handbrake", Names: []string{"hand brake"}},
	{Key: "inkscape", Names: []string{"inkscape vector"}},
	{Key: "blender", Names: []string{"blender 3d"}},
	{Key: "sharex", Names: []string{"share x"}},
	{Key: "irfanview", Names: []string{"irfan view"}},
	{Key: "treesize", Names: []string{"treesize free", "tree size"}},
	{Key: "autohotkey", Names: []string{"auto hotkey", "ahk"}},
	{Key: "cpu-z", Names: []string{"cpuid cpu-z", "cpuz"}},
	{Key: "rufus", Names: []string{"rufus usb"}},
	{Key: "flameshot", Names: []string{"flame shot"}},
	{Key: "office", Names: []string{"microsoft 365", "office 365", "microsoft office"}},
}
