package winget

import "github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"

// Table maps normalized names to winget package identifiers.
var Table = []catalog.Mapping{
	{Key: "chrome", ID: "Google.Chrome"},
	{Key: "firefox", ID: "Mozilla.Firefox"},
	{Key: "edge", ID: "Microsoft.Edge"},
	{Key: "brave", ID: "Brave.Brave"},
	{Key: "opera", ID: "Opera.Opera"},
	{Key: "thunderbird", ID: "Mozilla.Thunderbird"},
	{Key: "vlc", ID: "VideoLAN.VLC"},
	{Key: "7zip", ID: "7zip.7zip"},
	{Key: "winrar", ID: "RARLab.WinRAR"},
	{Key: "notepad++", ID: "Notepad++.Notepad++"},
	{Key: "vscode", ID: "Microsoft.VisualStudioCode"},
	{Key: "git", ID: "Git.Git"},
	{Key: "nodejs", ID: "OpenJS.NodeJS.LTS"},
	{Key: "python", ID: "Python.Python.3.12"},
	{Key: "java", ID: "Oracle.JavaRuntimeEnvironment"},
	{Key: "zoom", ID: "Zoom.Zoom"},
	{Key: "teams", ID: "Microsoft.Teams"},
	{Key: "slack", ID: "SlackTechnologies.Slack"},
	{Key: "putty", ID: "PuTTY.PuTTY"},
	{Key: "winscp", ID: "WinSCP.WinSCP"},
	{Key: "filezilla", ID: "TimKosse.FileZilla.Client"},
	{Key: "keepassxc", ID: "KeePassXCTeam.KeePassXC"},
	{Key: "keepass", ID: "DominikReichl.KeePass"},
	{Key: "libreoffice", ID: "TheDocumentFoundation.LibreOffice"},
	{Key: "gimp", ID: "GIMP.GIMP"},
	{Key: "audacity", ID: "Audacity.Audacity"},
	{Key: "obs", ID: "OBSProject.OBSStudio"},
	{Key: "wireshark", ID: "WiresharkFoundation.Wireshark"},
	{Key: "teamviewer", ID: "TeamViewer.TeamViewer"},
	{Key: "anydesk", ID: "AnyDeskSoftwareGmbH.AnyDesk"},
	{Key: "greenshot", ID: "Greenshot.Greenshot"},
	{Key: "paintnet", ID: "dotPDN.PaintDotNet"},
	{Key: "sumatrapdf", ID: "SumatraPDF.SumatraPDF"},
	{Key: "acrobat-reader", ID: "Adobe.Acrobat.Reader.64-bit"},
	{Key: "foxit-reader", ID: "Foxit.FoxitReader"},
	{Key: "powershell", ID: "Microsoft.PowerShell"},
	{Key: "terminal", ID: "Microsoft.WindowsTerminal"},
	{Key: "powertoys", ID: "Microsoft.PowerToys"},
	{Key: "docker-desktop", ID: "Docker.DockerDesktop"},
	{Key: "postman", ID: "Postman.Postman"},
	{Key: "spotify", ID: "Spotify.Spotify"},
	{Key: "dropbox", ID: "Dropbox.Dropbox"},
	{Key: "onedrive", ID: "Microsoft.OneDrive"},
	{Key: "virtualbox", ID: "Oracle.VirtualBox"},
	{Key: "handbrake", ID: "HandBrake.HandBrake"},
	{Key: "inkscape", ID: "Inkscape.Inkscape"},
	{Key: "blender", ID: "BlenderFoundation.Blender"},
	{Key: "sharex", ID: "ShareX.ShareX"},
	{Key: "irfanview", ID: "IrfanSkiljan.IrfanView"},
	{Key: "treesize", ID: "JAMSoftware.TreeSize.Free"},
	{Key: "autohotkey", ID: "AutoHotkey.AutoHotkey"},
	{Key: "cpu-z", ID: "CPUID.CPU-Z"},
	{Key: "rufus", ID: "Rufus.Rufus"},
	{Key: "flameshot", ID: "Flameshot.Flameshot"},
}
