package chocolatey

import "github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"

// Table maps normalized names to Chocolatey package ids.
var Table = []catalog.Mapping{
	{Key: "chrome", ID: "googlechrome"},
	{Key: "firefox", ID: "firefox"},
	{Key: "edge", ID: "microsoft-edge"},
	{Key: "brave", ID: "brave"},
	{Key: "opera", ID: "opera"},
	{Key: "thunderbird", ID: "thunderbird"},
	{Key: "vlc", ID: "vlc"},
	{Key: "7zip", ID: "7zip"},
	{Key: "winrar", ID: "winrar"},
	{Key: "notepad++", ID: "notepadplusplus"},
	{Key: "vscode", ID: "vscode"},
	{Key: "git", ID: "git"},
	{Key: "nodejs", ID: "nodejs-lts"},
	{Key: "python", ID: "python"},
	{Key: "java", ID: "javaruntime"},
	{Key: "zoom", ID: "zoom"},
	{Key: "teams", ID: "microsoft-teams"},
	{Key: "slack", ID: "slack"},
	{Key: "putty", ID: "putty"},
	{Key: "winscp", ID: "winscp"},
	{Key: "filezilla", ID: "filezilla"},
	{Key: "keepassxc", ID: "keepassxc"},
	{Key: "keepass", ID: "keepass"},
	{Key: "libreoffice", ID: "libreoffice-fresh"},
	{Key: "gimp", ID: "gimp"},
	{Key: "audacity", ID: "audacity"},
	{Key: "obs", ID: "obs-studio"},
	{Key: "wireshark", ID: "wireshark"},
	{Key: "teamviewer", ID: "teamviewer"},
	{Key: "anydesk", ID: "anydesk"},
	{Key: "greenshot", ID: "greenshot"},
	{Key: "paintnet", ID: "paint.net"},
	{Key: "sumatrapdf", ID: "sumatrapdf"},
	{Key: "acrobat-reader", ID: "adobereader"},
	{Key: "foxit-reader", ID: "foxitreader"},
	{Key: "powershell", ID: "powershell-core"},
	{Key: "terminal", ID: "microsoft-windows-terminal"},
	{Key: "powertoys", ID: "powertoys"},
	{Key: "docker-desktop", ID: "docker-desktop"},
	{Key: "postman", ID: "postman"},
	{Key: "spotify", ID: "spotify"},
	{Key: "dropbox", ID: "dropbox"},
	{Key: "virtualbox", ID: "virtualbox"},
	{Key: "handbrake", ID: "handbrake"},
	{Key: "inkscape", ID: "inkscape"},
	{Key: "blender", ID: "blender"},
	{Key: "sharex", ID: "sharex"},
	{Key: "irfanview", ID: "irfanview"},
	{Key: "treesize", ID: "treesizefree"},
	{Key: "autohotkey", ID: "autohotkey"},
	{Key: "cpu-z", ID: "cpu-z"},
	{Key: "rufus", ID: "rufus"},
	{Key: "flameshot", ID: "flameshot"},
	{Key: "office", ID: "office365business"},
}
