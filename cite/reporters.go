package cite

// Jurisdiction codes used across citation counts.
const (
	JurisdictionSG    = "SG"
	JurisdictionUK    = "UK"
	JurisdictionAU    = "AU"
	JurisdictionUSA   = "USA"
	JurisdictionCAN   = "CAN"
	JurisdictionIND   = "IND"
	JurisdictionNZ    = "NZ"
	JurisdictionEU    = "EU"
	JurisdictionOther = "OTHER"
)

// Jurisdictions lists the classification buckets in check order. Singapore
// comes first so local reporters win over foreign sets that share codes.
var Jurisdictions = []string{
	JurisdictionSG, JurisdictionUK, JurisdictionAU, JurisdictionUSA,
	JurisdictionCAN, JurisdictionIND, JurisdictionNZ, JurisdictionEU,
	JurisdictionOther,
}

var sgReporters = []string{
	"SGCA", "SGHC", "SGHCF", "SGDC", "SGMC", "SLR", "MLJ", "SGHCR",
}

var ukReporters = []string{
	"UKHL", "UKSC", "UKPC", "AC", "WLR", "QB", "KB", "Ch", "Fam",
	"EWCA", "EWHC", "All ER", "Lloyd", "ICR", "IRLR", "Cr App R",
	"BCLC", "BCC", "FSR", "RPC", "STC", "TC", "WTLR",
}

var auReporters = []string{
	"HCA", "FCAFC", "FCA", "NSWCA", "NSWSC", "VSC", "VSCA", "QCA", "QSC",
	"WASCA", "WASC", "SASC", "SASFC", "TASSC", "TASFC", "ACTSC", "ACTCA",
	"CLR", "ALR", "ALJR", "FLR", "NSWLR", "VR", "SASR", "WAR", "Qd R",
	"Tas R", "ACTR", "NTLR",
}

var usaReporters = []string{
	"US", "S Ct", "L Ed", "F", "F 2d", "F 3d", "F Supp", "F Supp 2d",
	"So", "So 2d", "NE", "NE 2d", "NW", "NW 2d", "SE", "SE 2d",
	"SW", "SW 2d", "P", "P 2d", "P 3d", "A", "A 2d", "A 3d",
	"Cal", "NY", "Ill", "Tex", "Mass", "Pa",
}

var canReporters = []string{
	"SCC", "SCR", "FC", "FCA", "ONCA", "ONSC", "BCCA", "BCSC",
	"ABCA", "ABQB", "DLR", "OR", "AR", "BCLR", "WWR", "RFL", "CCC",
}

var indReporters = []string{
	"SCC", "SCR", "AIR", "Bom", "Cal", "Mad", "All", "Del", "Kar", "Ker",
}

var nzReporters = []string{
	"NZSC", "NZCA", "NZHC", "NZLR", "NZAR",
}

var euReporters = []string{
	"ECR", "CMLR", "EUECJ", "ECHR",
}

// reporterSets pairs each jurisdiction with its reporter codes, in the
// Classify check order.
var reporterSets = []struct {
	jurisdiction string
	reporters    []string
}{
	{JurisdictionSG, sgReporters},
	{JurisdictionUK, ukReporters},
	{JurisdictionAU, auReporters},
	{JurisdictionUSA, usaReporters},
	{JurisdictionCAN, canReporters},
	{JurisdictionIND, indReporters},
	{JurisdictionNZ, nzReporters},
	{JurisdictionEU, euReporters},
}
